package savePhotos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photoGallery/internal/gallery"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
)

// multipart parts above this size are buffered on disk by net/http
const maxMemory = 32 << 20

type Request struct {
	Date        string `validate:"required"`
	Description string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoCreator
type PhotoCreator interface {
	Create(ctx context.Context, date, description string, uploads []gallery.Upload) (int, error)
}

// New stores every uploaded file as a photo sharing the submitted date and description.
// @Summary      Uploads photos
// @Description  Stores 1..10 images; either every photo is created or none is
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        date         formData  string  true  "Display date"
// @Param        description  formData  string  true  "Description"
// @Param        photo        formData  file    true  "Image files"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/upload [post]
func New(log *slog.Logger, creator PhotoCreator, maxBytes int64, maxFiles int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.savePhotos.New"

		log := log.With(slog.String("op", op))

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(maxMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Warn("upload too large", slog.Int64("limit", tooLarge.Limit))
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error("upload too large"))
				return
			}

			log.Warn("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse upload"))
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		headers := r.MultipartForm.File["photo"]
		if len(headers) == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("no files uploaded"))
			return
		}
		if len(headers) > maxFiles {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("at most %d files per upload", maxFiles)))
			return
		}

		req := Request{
			Date:        r.FormValue("date"),
			Description: r.FormValue("description"),
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Warn("invalid upload request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		uploads := make([]gallery.Upload, 0, len(headers))
		for _, h := range headers {
			data, err := readPart(h)
			if err != nil {
				log.Error("failed to read uploaded file", sl.Err(err), slog.String("filename", h.Filename))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to read uploaded file"))
				return
			}
			uploads = append(uploads, gallery.Upload{Filename: h.Filename, Data: data})
		}

		n, err := creator.Create(r.Context(), req.Date, req.Description, uploads)
		if err != nil {
			switch {
			case errors.Is(err, gallery.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
			case errors.Is(err, gallery.ErrValidation):
				log.Warn("upload rejected", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid upload"))
			default:
				log.Error("upload failed", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("upload failed"))
			}
			return
		}

		log.Info("photos uploaded", slog.Int("count", n))

		render.JSON(w, r, response.OK(fmt.Sprintf("upload succeeded: %d photo(s) added", n)))
	}
}

func readPart(h *multipart.FileHeader) ([]byte, error) {
	f, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
