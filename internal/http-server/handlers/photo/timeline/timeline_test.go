package timeline_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/gallery"
	"photoGallery/internal/http-server/handlers/photo/timeline"
	"photoGallery/internal/http-server/handlers/photo/timeline/mocks"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

func TestTimeline(t *testing.T) {
	tests := []struct {
		name           string
		days           []gallery.Day
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Empty",
			days:           []gallery.Day{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Days",
			days:           []gallery.Day{{Date: "2024-05-02"}, {Date: "2024-05-01"}},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"date":"2024-05-02","photos":null},{"date":"2024-05-01","photos":null}]`,
		},
		{
			name:           "Error",
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"failed to fetch timeline"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builderMock := mocks.NewTimelineBuilder(t)
			builderMock.On("Timeline", mock.Anything).Return(tt.days, tt.mockErr).Once()

			rr := httptest.NewRecorder()
			timeline.New(slogdiscard.NewDiscardLogger(), builderMock).
				ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/timeline", nil))

			require.Equal(t, tt.expectedStatus, rr.Code)
			require.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
