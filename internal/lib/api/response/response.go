package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the body of every JSON reply that carries no payload.
type Response struct {
	Message string `json:"message"`
}

func OK(msg string) Response {
	return Response{Message: msg}
}

func Error(msg string) Response {
	return Response{Message: msg}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", strings.ToLower(err.Field())))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", strings.ToLower(err.Field())))
		}
	}

	return Response{
		Message: strings.Join(errMsgs, ", "),
	}
}
