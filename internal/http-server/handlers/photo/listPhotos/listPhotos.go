package listPhotos

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"photoGallery/internal/gallery"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoLister
type PhotoLister interface {
	List(ctx context.Context, page, limit int) (*gallery.Page, error)
	All(ctx context.Context) ([]models.Photo, error)
}

// New lists photos newest first.
// @Summary      Lists photos
// @Description  With page or limit returns one page and the total count, otherwise every photo
// @Tags         photos
// @Produce      json
// @Param        page   query  int  false  "Page number, starting at 1"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  gallery.Page
// @Failure      500  {object}  response.Response
// @Router       /api/photos [get]
func New(log *slog.Logger, lister PhotoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.listPhotos.New"

		log := log.With(slog.String("op", op))

		q := r.URL.Query()
		if !q.Has("page") && !q.Has("limit") {
			photos, err := lister.All(r.Context())
			if err != nil {
				log.Error("failed to list photos", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to fetch photos"))
				return
			}

			render.JSON(w, r, photos)
			return
		}

		// invalid values fall back to the defaults
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		result, err := lister.List(r.Context(), page, limit)
		if err != nil {
			log.Error("failed to list photos", sl.Err(err), slog.Int("page", page), slog.Int("limit", limit))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch photos"))
			return
		}

		render.JSON(w, r, result)
	}
}
