package deletePhoto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"photoGallery/internal/gallery"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoDeleter
type PhotoDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// New deletes a photo and both of its files.
// @Summary      Deletes a photo
// @Tags         photos
// @Produce      json
// @Param        id   path  int  true  "Photo ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/{id} [delete]
func New(log *slog.Logger, deleter PhotoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.deletePhoto.New"

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

		log.Info("attempting to delete photo", slog.Int64("photo_id", id))

		if err = deleter.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, gallery.ErrNotFound):
				log.Warn("photo not found for deletion", slog.Int64("photo_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("photo not found"))
			case errors.Is(err, gallery.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
			default:
				log.Error("failed to delete photo", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("delete failed"))
			}
			return
		}

		render.JSON(w, r, response.OK("delete succeeded"))
	}
}
