package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionEnder
type SessionEnder interface {
	Logout(w http.ResponseWriter, r *http.Request) error
}

// New ends the admin session.
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/logout [post]
func New(log *slog.Logger, sessions SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		if err := sessions.Logout(w, r); err != nil {
			log.Error("failed to expire session", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("logout failed"))
			return
		}

		render.JSON(w, r, response.OK("logout succeeded"))
	}
}
