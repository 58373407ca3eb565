package updatePhoto

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photoGallery/internal/gallery"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

type Request struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoUpdater
type PhotoUpdater interface {
	Update(ctx context.Context, id int64, date, description string) error
}

// New replaces the date and description of a photo.
// @Summary      Updates a photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        id       path  int                  true  "Photo ID"
// @Param        request  body  updatePhoto.Request  true  "New date and description"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/{id} [put]
func New(log *slog.Logger, updater PhotoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.updatePhoto.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid photo id"))
			return
		}

		if id < 1 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("photo not found"))
			return
		}

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Warn("request body is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty request"))
			return
		}
		if err != nil {
			log.Warn("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = updater.Update(r.Context(), id, req.Date, req.Description); err != nil {
			switch {
			case errors.Is(err, gallery.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("photo not found"))
			case errors.Is(err, gallery.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
			case errors.Is(err, gallery.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid request"))
			default:
				log.Error("failed to update photo", sl.Err(err), slog.Int64("photo_id", id))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("update failed"))
			}
			return
		}

		log.Info("photo updated", slog.Int64("photo_id", id))

		render.JSON(w, r, response.OK("update succeeded"))
	}
}
