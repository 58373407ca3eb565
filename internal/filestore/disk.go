package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Disk stores files below a web-served public directory. A file saved as
// name is reachable at /<prefix>/<name>.
type Disk struct {
	publicDir string
	prefix    string
	dirs      cmap.ConcurrentMap[string, struct{}]
}

func NewDisk(publicDir, urlPrefix string) *Disk {
	return &Disk{
		publicDir: publicDir,
		prefix:    strings.Trim(urlPrefix, "/"),
		dirs:      cmap.New[struct{}](),
	}
}

func (d *Disk) ensureDir(dir string) error {
	if d.dirs.Has(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	d.dirs.Set(dir, struct{}{})

	return nil
}

func (d *Disk) URL(name string) string {
	return "/" + path.Join(d.prefix, name)
}

// localPath maps a URL produced by Save back to a path on disk.
func (d *Disk) localPath(url string) (string, error) {
	clean := path.Clean("/" + url)
	rel, ok := strings.CutPrefix(clean, "/"+d.prefix+"/")
	if !ok || rel == "" || strings.Contains(rel, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}

	return filepath.Join(d.publicDir, d.prefix, rel), nil
}

// Save writes data under name and returns its URL. The data lands in a temp
// file first so the URL never serves a partial image.
func (d *Disk) Save(_ context.Context, name string, data []byte) (string, error) {
	const op = "filestore.Disk.Save"

	url := d.URL(name)
	dst, err := d.localPath(url)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(dst)
	if err = d.ensureDir(dir); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

func (d *Disk) Remove(_ context.Context, url string) error {
	const op = "filestore.Disk.Remove"

	p, err := d.localPath(url)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %s: %w", op, url, ErrNotExist)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (d *Disk) Exists(_ context.Context, url string) (bool, error) {
	const op = "filestore.Disk.Exists"

	p, err := d.localPath(url)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
