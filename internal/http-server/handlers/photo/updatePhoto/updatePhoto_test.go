package updatePhoto_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/gallery"
	"photoGallery/internal/http-server/handlers/photo/updatePhoto"
	"photoGallery/internal/http-server/handlers/photo/updatePhoto/mocks"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

func TestUpdatePhoto(t *testing.T) {
	const validBody = `{"date":"2024-06-02","description":"Beach"}`

	tests := []struct {
		name           string
		photoID        string
		body           string
		mockErr        error
		expectCall     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			photoID:        "4",
			body:           validBody,
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"update succeeded"}`,
		},
		{
			name:           "Invalid ID",
			photoID:        "abc",
			body:           validBody,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"invalid photo id"}`,
		},
		{
			name:           "Negative ID",
			photoID:        "-1",
			body:           validBody,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"photo not found"}`,
		},
		{
			name:           "Zero ID",
			photoID:        "0",
			body:           validBody,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"photo not found"}`,
		},
		{
			name:           "Empty Body",
			photoID:        "4",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"empty request"}`,
		},
		{
			name:           "Missing Date",
			photoID:        "4",
			body:           `{"description":"Beach"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field date is a required field"}`,
		},
		{
			name:           "Not Found",
			photoID:        "4",
			body:           validBody,
			mockErr:        gallery.ErrNotFound,
			expectCall:     true,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"photo not found"}`,
		},
		{
			name:           "Unauthorized",
			photoID:        "4",
			body:           validBody,
			mockErr:        gallery.ErrUnauthorized,
			expectCall:     true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:           "Internal Error",
			photoID:        "4",
			body:           validBody,
			mockErr:        errors.New("db error"),
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"update failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updaterMock := mocks.NewPhotoUpdater(t)
			if tt.expectCall {
				updaterMock.On("Update", mock.Anything, int64(4), "2024-06-02", "Beach").Return(tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPut, "/api/photos/"+tt.photoID, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.photoID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			updatePhoto.New(slogdiscard.NewDiscardLogger(), updaterMock).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			require.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
