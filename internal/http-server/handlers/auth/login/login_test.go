package login_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/http-server/handlers/auth/login"
	"photoGallery/internal/http-server/handlers/auth/login/mocks"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		verifyOK       bool
		verifyErr      error
		expectVerify   bool
		expectSession  bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "JSON Success",
			contentType:    "application/json",
			body:           `{"password":"secret"}`,
			verifyOK:       true,
			expectVerify:   true,
			expectSession:  true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"login succeeded"}`,
		},
		{
			name:           "Form Success",
			contentType:    "application/x-www-form-urlencoded",
			body:           url.Values{"password": {"secret"}}.Encode(),
			verifyOK:       true,
			expectVerify:   true,
			expectSession:  true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"login succeeded"}`,
		},
		{
			name:           "Wrong Password",
			contentType:    "application/json",
			body:           `{"password":"secret"}`,
			expectVerify:   true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"invalid password"}`,
		},
		{
			name:           "Missing Password",
			contentType:    "application/json",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field password is a required field"}`,
		},
		{
			name:           "Broken JSON",
			contentType:    "application/json; charset=utf-8",
			body:           `{"password":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"failed to decode request"}`,
		},
		{
			name:           "No Hash Configured",
			contentType:    "application/json",
			body:           `{"password":"secret"}`,
			verifyErr:      errors.New("admin password hash is not configured"),
			expectVerify:   true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"login failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifierMock := mocks.NewPasswordVerifier(t)
			sessionMock := mocks.NewSessionStarter(t)

			if tt.expectVerify {
				verifierMock.On("Verify", "secret").Return(tt.verifyOK, tt.verifyErr).Once()
			}
			if tt.expectSession {
				sessionMock.On("Login", mock.Anything, mock.Anything).Return(nil).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rr := httptest.NewRecorder()

			login.New(slogdiscard.NewDiscardLogger(), verifierMock, sessionMock).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			require.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
