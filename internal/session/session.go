// Package session keeps the admin login in a signed cookie.
package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/gorilla/sessions"

	"photoGallery/internal/auth"
	"photoGallery/internal/config"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

const authenticatedKey = "isAuthenticated"

type Manager struct {
	log   *slog.Logger
	store *sessions.CookieStore
	name  string
}

// New builds a cookie store signed with cfg.Secret. The session is not
// refreshed on activity; it expires MaxAge after login.
func New(log *slog.Logger, cfg config.Session, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	// keeps the codec expiry in step with the cookie
	store.MaxAge(store.Options.MaxAge)

	return &Manager{
		log:   log,
		store: store,
		name:  cfg.CookieName,
	}
}

// Login marks the caller's session as authenticated.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request) error {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		// an unreadable cookie is replaced by the new session
		m.log.Debug("discarding invalid session cookie", sl.Err(err))
	}

	s.Values[authenticatedKey] = true

	return s.Save(r, w)
}

// Logout expires the session cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)

	delete(s.Values, authenticatedKey)
	s.Options.MaxAge = -1

	return s.Save(r, w)
}

func (m *Manager) authenticated(r *http.Request) bool {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		return false
	}

	ok, _ := s.Values[authenticatedKey].(bool)
	return ok
}

// Load puts the admin principal into the request context for requests that
// carry an authenticated session.
func (m *Manager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authenticated(r) {
			r = r.WithContext(auth.WithAdmin(r.Context()))
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAPI rejects requests without an admin principal with 401.
func RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAdmin(r.Context()) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePage sends visitors without an admin principal to the login page.
// Admin pages are never cached so a logout takes effect on back navigation.
func RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if !auth.IsAdmin(r.Context()) {
			http.Redirect(w, r, "/login.html", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
