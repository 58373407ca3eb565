package deletePhoto_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/gallery"
	"photoGallery/internal/http-server/handlers/photo/deletePhoto"
	"photoGallery/internal/http-server/handlers/photo/deletePhoto/mocks"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

func TestDeletePhoto(t *testing.T) {
	tests := []struct {
		name           string
		photoID        string
		mockErr        error
		expectCall     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			photoID:        "9",
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"delete succeeded"}`,
		},
		{
			name:           "Invalid ID",
			photoID:        "nine",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"invalid photo id"}`,
		},
		{
			name:           "Zero ID",
			photoID:        "0",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"photo not found"}`,
		},
		{
			name:           "Negative ID",
			photoID:        "-5",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"photo not found"}`,
		},
		{
			name:           "Not Found",
			photoID:        "9",
			mockErr:        fmt.Errorf("gallery.Service.Delete: %w", gallery.ErrNotFound),
			expectCall:     true,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"photo not found"}`,
		},
		{
			name:           "Unauthorized",
			photoID:        "9",
			mockErr:        gallery.ErrUnauthorized,
			expectCall:     true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:           "Storage Error",
			photoID:        "9",
			mockErr:        errors.Join(gallery.ErrStorage, errors.New("permission denied")),
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"delete failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleterMock := mocks.NewPhotoDeleter(t)
			if tt.expectCall {
				deleterMock.On("Delete", mock.Anything, int64(9)).Return(tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/photos/"+tt.photoID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.photoID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			deletePhoto.New(slogdiscard.NewDiscardLogger(), deleterMock).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			require.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
