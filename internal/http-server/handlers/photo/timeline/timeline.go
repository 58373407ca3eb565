package timeline

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"photoGallery/internal/gallery"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TimelineBuilder
type TimelineBuilder interface {
	Timeline(ctx context.Context) ([]gallery.Day, error)
}

// New groups every photo by its display date, newest day first.
// @Summary      Photo timeline
// @Tags         photos
// @Produce      json
// @Success      200  {array}   gallery.Day
// @Failure      500  {object}  response.Response
// @Router       /api/timeline [get]
func New(log *slog.Logger, builder TimelineBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.timeline.New"

		days, err := builder.Timeline(r.Context())
		if err != nil {
			log.Error("failed to build timeline", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch timeline"))
			return
		}

		render.JSON(w, r, days)
	}
}
