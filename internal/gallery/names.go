package gallery

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var extByContentType = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/bmp":  {".bmp"},
}

// fileNames builds the stored names of the full-size image and its thumbnail:
// <unix millis>-<8 random hex>-<original name> and the same with a thumb- marker.
// The extension follows the encoded data when the original one does not match.
func fileNames(stamp int64, original string, encoded []byte) (string, string) {
	name := sanitizeFilename(original)
	name = matchExtension(name, http.DetectContentType(encoded))
	tag := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("%d-%s-%s", stamp, tag, name), fmt.Sprintf("%d-%s-thumb-%s", stamp, tag, name)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "photo"
	}

	return out
}

func matchExtension(name, contentType string) string {
	exts, ok := extByContentType[contentType]
	if !ok {
		return name
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return name
		}
	}

	return name + exts[0]
}
