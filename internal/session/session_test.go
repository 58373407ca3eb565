package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/auth"
	"photoGallery/internal/config"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
	"photoGallery/internal/session"
)

func newManager() *session.Manager {
	return session.New(slogdiscard.NewDiscardLogger(), config.Session{
		Secret:     "test-secret",
		CookieName: "gallery_session",
		MaxAge:     time.Hour,
	}, false)
}

func loginCookie(t *testing.T, m *session.Manager) *http.Cookie {
	t.Helper()

	rr := httptest.NewRecorder()
	require.NoError(t, m.Login(rr, httptest.NewRequest(http.MethodPost, "/api/login", nil)))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "gallery_session", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	require.Equal(t, 3600, cookies[0].MaxAge)

	return cookies[0]
}

func markSeen(seen *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = auth.IsAdmin(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestLoadSetsPrincipal(t *testing.T) {
	m := newManager()
	cookie := loginCookie(t, m)

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   bool
	}{
		{name: "Logged In", cookie: cookie, want: true},
		{name: "No Cookie", want: false},
		{name: "Forged Cookie", cookie: &http.Cookie{Name: "gallery_session", Value: "forged"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			var seen bool
			m.Load(markSeen(&seen)).ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, tt.want, seen)
		})
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	m := newManager()
	cookie := loginCookie(t, m)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()

	require.NoError(t, m.Logout(rr, req))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].MaxAge < 0)
}

func TestRequireAPI(t *testing.T) {
	var seen bool
	h := session.RequireAPI(markSeen(&seen))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/photos/1", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())

	req := httptest.NewRequest(http.MethodDelete, "/api/photos/1", nil)
	req = req.WithContext(auth.WithAdmin(req.Context()))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.True(t, seen)
}

func TestRequirePage(t *testing.T) {
	var seen bool
	h := session.RequirePage(markSeen(&seen))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login.html", rr.Header().Get("Location"))
	require.Contains(t, rr.Header().Get("Cache-Control"), "no-store")
	require.False(t, seen)
}
