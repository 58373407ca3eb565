package savePhotos_test

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/gallery"
	"photoGallery/internal/http-server/handlers/photo/savePhotos"
	"photoGallery/internal/http-server/handlers/photo/savePhotos/mocks"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

type form struct {
	fields map[string]string
	files  []string
}

func (f form) encode(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range f.fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, name := range f.files {
		fw, err := mw.CreateFormFile("photo", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestSavePhotos(t *testing.T) {
	valid := map[string]string{"date": "2024-05-01", "description": "Picnic"}

	uploadsNamed := func(names ...string) interface{} {
		return mock.MatchedBy(func(uploads []gallery.Upload) bool {
			if len(uploads) != len(names) {
				return false
			}
			for i, u := range uploads {
				if u.Filename != names[i] || string(u.Data) != "content of "+names[i] {
					return false
				}
			}
			return true
		})
	}

	tests := []struct {
		name           string
		form           form
		setup          func(m *mocks.PhotoCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			form: form{fields: valid, files: []string{"a.jpg", "b.jpg"}},
			setup: func(m *mocks.PhotoCreator) {
				m.On("Create", mock.Anything, "2024-05-01", "Picnic", uploadsNamed("a.jpg", "b.jpg")).Return(2, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"upload succeeded: 2 photo(s) added"}`,
		},
		{
			name:           "No Files",
			form:           form{fields: valid},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"no files uploaded"}`,
		},
		{
			name:           "Too Many Files",
			form:           form{fields: valid, files: []string{"1", "2", "3", "4"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"at most 3 files per upload"}`,
		},
		{
			name:           "Missing Description",
			form:           form{fields: map[string]string{"date": "2024-05-01"}, files: []string{"a.jpg"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field description is a required field"}`,
		},
		{
			name: "Processing Failure",
			form: form{fields: valid, files: []string{"a.jpg"}},
			setup: func(m *mocks.PhotoCreator) {
				m.On("Create", mock.Anything, "2024-05-01", "Picnic", mock.Anything).
					Return(0, fmt.Errorf("gallery.Service.Create: %w", gallery.ErrProcessing)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"upload failed"}`,
		},
		{
			name: "Unauthorized",
			form: form{fields: valid, files: []string{"a.jpg"}},
			setup: func(m *mocks.PhotoCreator) {
				m.On("Create", mock.Anything, "2024-05-01", "Picnic", mock.Anything).Return(0, gallery.ErrUnauthorized).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Unauthorized"}`,
		},
		{
			name: "Database Failure",
			form: form{fields: valid, files: []string{"a.jpg"}},
			setup: func(m *mocks.PhotoCreator) {
				m.On("Create", mock.Anything, "2024-05-01", "Picnic", mock.Anything).Return(0, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"upload failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creatorMock := mocks.NewPhotoCreator(t)
			if tt.setup != nil {
				tt.setup(creatorMock)
			}

			body, contentType := tt.form.encode(t)
			req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			savePhotos.New(slogdiscard.NewDiscardLogger(), creatorMock, 1<<20, 3).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			require.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestSavePhotosRejectsOversizedBody(t *testing.T) {
	creatorMock := mocks.NewPhotoCreator(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "big.jpg")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0xff}, 4096))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()

	savePhotos.New(slogdiscard.NewDiscardLogger(), creatorMock, 1024, 10).ServeHTTP(rr, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
