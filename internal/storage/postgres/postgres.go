package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"photoGallery/internal/config"
	"photoGallery/internal/models"
	"photoGallery/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := dbCfg.URL
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.User,
			dbCfg.Password,
			dbCfg.DBName,
			dbCfg.SSLMode,
		)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS photos (
			id SERIAL PRIMARY KEY,
			date TEXT NOT NULL,
			description TEXT NOT NULL,
			"imageUrl" TEXT NOT NULL,
			"thumbnailUrl" TEXT NOT NULL,
			"takenAt" TIMESTAMPTZ,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`ALTER TABLE photos ADD COLUMN IF NOT EXISTS "takenAt" TIMESTAMPTZ`,
		`CREATE INDEX IF NOT EXISTS idx_date ON photos(date)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) CountPhotos(ctx context.Context) (int, error) {
	const op = "storage.postgres.CountPhotos"

	var total int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Storage) ListPhotos(ctx context.Context, limit, offset int) ([]models.Photo, error) {
	const op = "storage.postgres.ListPhotos"

	query := `
        SELECT ` + storage.PhotoColumns + `
        FROM photos
        ORDER BY "createdAt" DESC, id DESC
        LIMIT $1 OFFSET $2`

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
	const op = "storage.postgres.AllPhotos"

	query := `
        SELECT ` + storage.PhotoColumns + `
        FROM photos
        ORDER BY "createdAt" DESC, id DESC`

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
	const op = "storage.postgres.GetPhoto"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos WHERE id = $1`

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
	const op = "storage.postgres.PhotosByDate"

	query := `
        SELECT ` + storage.PhotoColumns + `
        FROM photos
        WHERE date = $1
        ORDER BY "createdAt" DESC, id DESC`

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
	const op = "storage.postgres.UpdatePhoto"

	result, err := s.DB.ExecContext(ctx, `UPDATE photos SET date = $1, description = $2 WHERE id = $3`, date, description, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	return nil
}

// InTx runs fn inside a transaction that holds one pooled connection until it
// commits or rolls back.
func (s *Storage) InTx(ctx context.Context, fn func(tx storage.Tx) error) (err error) {
	const op = "storage.postgres.InTx"

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
	const op = "storage.postgres.InsertPhoto"

	query := `
        INSERT INTO photos (date, description, "imageUrl", "thumbnailUrl", "takenAt")
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	var id int64
	err := t.tx.QueryRowContext(ctx, query,
		photo.Date,
		photo.Description,
		photo.ImageURL,
		photo.ThumbnailURL,
		photo.TakenAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (t *tx) LockPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	const op = "storage.postgres.LockPhoto"

	query := `SELECT ` + storage.PhotoColumns + ` FROM photos WHERE id = $1 FOR UPDATE`

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
	const op = "storage.postgres.DeletePhoto"

	result, err := t.tx.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: photo %d: %w", op, id, storage.ErrPhotoNotFound)
	}

	return nil
}
