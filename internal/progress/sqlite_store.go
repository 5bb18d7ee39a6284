package progress

import (
	"context"
	"database/sql"
	"fmt"

	"greenplot/pkg/database"
	"greenplot/pkg/models"
)

// SQLiteStore keeps the ledger in a local SQLite table. Same contract as
// FileStore with real transactional appends, for single-host deployments
// that have outgrown the JSON document.
type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	s := &SQLiteStore{DB: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS progress_entries (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			region          TEXT NOT NULL,
			soil            TEXT NOT NULL,
			area_sqm        TEXT NOT NULL,
			note            TEXT NOT NULL DEFAULT '',
			photo_reference TEXT NOT NULL,
			created_at      TEXT NOT NULL,
			user_id         TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_progress_entries_user ON progress_entries(user_id);
	`)
	if err != nil {
		return fmt.Errorf("migrate progress_entries: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, entry models.ProgressEntry) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO progress_entries (region, soil, area_sqm, note, photo_reference, created_at, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.Region, entry.Soil, entry.AreaSqM, entry.Note, entry.PhotoReference, entry.CreatedAt, entry.UserID)
	if err != nil {
		return fmt.Errorf("insert progress entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) All(ctx context.Context) ([]models.ProgressEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT region, soil, area_sqm, note, photo_reference, created_at, user_id
		FROM progress_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list progress entries: %w", err)
	}
	defer rows.Close()

	var out []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.Region, &e.Soil, &e.AreaSqM, &e.Note, &e.PhotoReference, &e.CreatedAt, &e.UserID); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows progress entries: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error { return s.DB.Close() }
