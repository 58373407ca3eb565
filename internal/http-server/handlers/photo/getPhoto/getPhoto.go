package getPhoto

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoGetter
type PhotoGetter interface {
	Get(ctx context.Context, id int64) (*gallery.Detail, error)
}

// New returns one photo together with the photos taken on the same day.
// @Summary      Gets a photo
// @Tags         photos
// @Produce      json
// @Param        id   path  int  true  "Photo ID"
// @Success      200  {object}  gallery.Detail
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/{id} [get]
func New(log *slog.Logger, getter PhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.getPhoto.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Warn("invalid photo id", slog.String("id", chi.URLParam(r, "id")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid photo id"))
			return
		}

		// ids start at 1, so anything lower names no photo
		if id < 1 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("photo not found"))
			return
		}

		detail, err := getter.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, gallery.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("photo not found"))
				return
			}

			log.Error("failed to get photo", sl.Err(err), slog.Int64("photo_id", id))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch photo"))
			return
		}

		render.JSON(w, r, detail)
	}
}
