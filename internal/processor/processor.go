package processor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp"

	"photoGallery/internal/lib/logger/sl"
)

var (
	ErrDecode = errors.New("cannot decode image")
	ErrEncode = errors.New("cannot encode image")
)

type Options struct {
	FullWidth   int
	ThumbWidth  int
	JPEGQuality int
}

// ImageProcessor derives the full-size and thumbnail images of an upload.
// It holds no state between calls.
type ImageProcessor struct {
	log  *slog.Logger
	opts Options
}

func NewImageProcessor(log *slog.Logger, opts Options) *ImageProcessor {
	return &ImageProcessor{
		log:  log,
		opts: opts,
	}
}

// DeriveFullSize caps the width at FullWidth. Smaller images keep their size.
func (p *ImageProcessor) DeriveFullSize(data []byte) ([]byte, error) {
	const op = "processor.DeriveFullSize"

	src, format, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if src.Bounds().Dx() > p.opts.FullWidth {
		src = imaging.Resize(src, p.opts.FullWidth, 0, imaging.Lanczos)
	}

	out, err := p.encode(src, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// DeriveThumbnail scales the image to exactly ThumbWidth pixels wide.
func (p *ImageProcessor) DeriveThumbnail(data []byte) ([]byte, error) {
	const op = "processor.DeriveThumbnail"

	src, format, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	thumb := imaging.Resize(src, p.opts.ThumbWidth, 0, imaging.CatmullRom)

	out, err := p.encode(thumb, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// TakenAt reports the EXIF capture time of the image, if it carries one.
func (p *ImageProcessor) TakenAt(data []byte) (time.Time, bool) {
	const op = "processor.TakenAt"

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		p.log.Debug("no exif data", slog.String("op", op), sl.Err(err))
		return time.Time{}, false
	}

	t, err := x.DateTime()
	if err != nil {
		p.log.Debug("no exif capture time", slog.String("op", op), sl.Err(err))
		return time.Time{}, false
	}

	return t, true
}

func decode(data []byte) (image.Image, imaging.Format, error) {
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	// WebP and other decode-only formats are re-encoded as JPEG.
	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		format = imaging.JPEG
	}

	return src, format, nil
}

func (p *ImageProcessor) encode(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer

	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.opts.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return buf.Bytes(), nil
}
