package login

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

type Request struct {
	Password string `json:"password" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordVerifier
type PasswordVerifier interface {
	Verify(password string) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionStarter
type SessionStarter interface {
	Login(w http.ResponseWriter, r *http.Request) error
}

// New starts an admin session when the password matches.
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        request  body  login.Request  true  "Admin password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/login [post]
func New(log *slog.Logger, verifier PasswordVerifier, sessions SessionStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/json" {
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				log.Warn("failed to decode request body", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to decode request"))
				return
			}
		} else {
			req.Password = r.FormValue("password")
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		ok, err := verifier.Verify(req.Password)
		if err != nil {
			log.Error("failed to verify password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("login failed"))
			return
		}
		if !ok {
			log.Warn("wrong admin password", slog.String("remote_addr", r.RemoteAddr))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid password"))
			return
		}

		if err = sessions.Login(w, r); err != nil {
			log.Error("failed to save session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("login failed"))
			return
		}

		log.Info("admin logged in")

		render.JSON(w, r, response.OK("login succeeded"))
	}
}
