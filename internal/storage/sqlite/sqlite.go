package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"photoGallery/internal/models"
	"photoGallery/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

// New opens the database file at path. Write transactions take the database
// lock when they begin so concurrent uploads queue behind the busy timeout
// instead of failing on lock upgrade.
func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.sqlite.Migrate"

	_, err := s.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		description TEXT NOT NULL,
		imageUrl TEXT NOT NULL,
		thumbnailUrl TEXT NOT NULL,
		takenAt DATETIME,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hasTakenAt, err := s.hasColumn(ctx, "photos", "takenAt")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !hasTakenAt {
		if _, err = s.DB.ExecContext(ctx, `ALTER TABLE photos ADD COLUMN takenAt DATETIME`); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err = s.DB.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_date ON photos(date)`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) hasColumn(ctx context.Context, table, column string) (bool, error) {
	rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err = rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}

	return false, rows.Err()
}

func (s *Storage) CountPhotos(ctx context.Context) (int, error) {
	const op = "storage.sqlite.CountPhotos"

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Storage) ListPhotos(ctx context.Context, limit, offset int) ([]models.Photo, error) {
	const op = "storage.sqlite.ListPhotos"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos ORDER BY "createdAt" DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	photos, err := storage.ScanPhotos(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

func (s *Storage) AllPhotos(ctx context.Context) ([]models.Photo, error) {
	const op = "storage.sqlite.AllPhotos"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos ORDER BY "createdAt" DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	photos, err := storage.ScanPhotos(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

func (s *Storage) GetPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	const op = "storage.sqlite.GetPhoto"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos WHERE id = ?`

	photo, err := storage.ScanPhoto(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &photo, nil
}

func (s *Storage) PhotosByDate(ctx context.Context, date string) ([]models.Photo, error) {
	const op = "storage.sqlite.PhotosByDate"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos WHERE date = ? ORDER BY "createdAt" DESC, id DESC`

	rows, err := s.DB.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	photos, err := storage.ScanPhotos(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return photos, nil
}

func (s *Storage) UpdatePhoto(ctx context.Context, id int64, date, description string) error {
	const op = "storage.sqlite.UpdatePhoto"

	result, err := s.DB.ExecContext(ctx, `UPDATE photos SET date = ?, description = ? WHERE id = ?`, date, description, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	return nil
}

func (s *Storage) InTx(ctx context.Context, fn func(tx storage.Tx) error) (err error) {
	const op = "storage.sqlite.InTx"

	sqlTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = sqlTx.Rollback()
		}
	}()

	if err = fn(&tx{tx: sqlTx}); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

type tx struct {
	tx *sql.Tx
}

func (t *tx) InsertPhoto(ctx context.Context, photo models.Photo) (int64, error) {
	const op = "storage.sqlite.InsertPhoto"

	var takenAt any
	if photo.TakenAt != nil {
		takenAt = photo.TakenAt.UTC()
	}

	result, err := t.tx.ExecContext(ctx,
		`INSERT INTO photos (date, description, imageUrl, thumbnailUrl, takenAt) VALUES (?, ?, ?, ?, ?)`,
		photo.Date, photo.Description, photo.ImageURL, photo.ThumbnailURL, takenAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// LockPhoto relies on the immediate transaction already holding the write lock.
func (t *tx) LockPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	const op = "storage.sqlite.LockPhoto"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos WHERE id = ?`

	photo, err := storage.ScanPhoto(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &photo, nil
}

func (t *tx) DeletePhoto(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeletePhoto"

	result, err := t.tx.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	return nil
}
