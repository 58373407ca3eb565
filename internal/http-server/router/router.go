// Package router wires the HTTP API, the admin pages and the static site.
package router

import (
	"log/slog"
	"net/http"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "photoGallery/docs"
	"photoGallery/internal/config"
	"photoGallery/internal/gallery"
	"photoGallery/internal/http-server/handlers/auth/login"
	"photoGallery/internal/http-server/handlers/auth/logout"
	"photoGallery/internal/http-server/handlers/photo/deletePhoto"
	"photoGallery/internal/http-server/handlers/photo/getPhoto"
	"photoGallery/internal/http-server/handlers/photo/listPhotos"
	"photoGallery/internal/http-server/handlers/photo/savePhotos"
	"photoGallery/internal/http-server/handlers/photo/timeline"
	"photoGallery/internal/http-server/handlers/photo/updatePhoto"
	"photoGallery/internal/http-server/middleware/mwlogger"
	"photoGallery/internal/session"
)

func New(
	log *slog.Logger,
	cfg *config.Config,
	photos *gallery.Service,
	sessions *session.Manager,
	verifier login.PasswordVerifier,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.CleanPath)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(sessions.Load)

	router.Route("/api", func(r chi.Router) {
		r.Get("/photos", listPhotos.New(log, photos))
		r.Get("/photos/{id}", getPhoto.New(log, photos))
		r.Get("/timeline", timeline.New(log, photos))

		r.Post("/login", login.New(log, verifier, sessions))
		r.Post("/logout", logout.New(log, sessions))

		r.Group(func(r chi.Router) {
			r.Use(session.RequireAPI)

			r.Post("/upload", savePhotos.New(log, photos, cfg.HTTPServer.MaxUploadBytes, cfg.Upload.MaxFiles))
			r.Put("/photos/{id}", updatePhoto.New(log, photos))
			r.Delete("/photos/{id}", deletePhoto.New(log, photos))
		})
	})

	pages := adminPages(cfg.Storage.PublicDir)
	for p, h := range pages {
		router.Get(p, h.ServeHTTP)
	}

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Handle("/*", static(cfg.Storage.PublicDir, pages))

	return router
}

// adminPages maps the session-only pages to their guarded handlers.
func adminPages(publicDir string) map[string]http.Handler {
	admin := session.RequirePage(page(publicDir, "admin.html"))
	manage := session.RequirePage(page(publicDir, "manage.html"))

	return map[string]http.Handler{
		"/admin":       admin,
		"/admin.html":  admin,
		"/manage.html": manage,
	}
}

// static serves the public dir. Requests that resolve to an admin page by
// another spelling (escaped or non-canonical) go through the page guard.
func static(publicDir string, guarded map[string]http.Handler) http.Handler {
	files := http.FileServer(http.Dir(publicDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := guarded[path.Clean("/"+r.URL.Path)]; ok {
			h.ServeHTTP(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}

func page(publicDir, name string) http.HandlerFunc {
	file := filepath.Join(publicDir, name)

	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, file)
	}
}
