package progress

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"greenplot/pkg/models"
)

// PostgresStore keeps the ledger in PostgreSQL for deployments that run
// more than one API instance against a shared database.
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore opens the connection, waits for the database to accept
// pings (containers routinely come up after the API does), runs the schema
// migration and returns a ready store.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	s := &PostgresStore{DB: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS progress_entries (
			id              SERIAL PRIMARY KEY,
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
	return err
}

func (s *PostgresStore) Append(ctx context.Context, entry models.ProgressEntry) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO progress_entries (region, soil, area_sqm, note, photo_reference, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.Region, entry.Soil, entry.AreaSqM, entry.Note, entry.PhotoReference, entry.CreatedAt, entry.UserID)
	if err != nil {
		return fmt.Errorf("postgres: insert progress entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) All(ctx context.Context) ([]models.ProgressEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT region, soil, area_sqm, note, photo_reference, created_at, user_id
		FROM progress_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list progress entries: %w", err)
	}
	defer rows.Close()

	var out []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.Region, &e.Soil, &e.AreaSqM, &e.Note, &e.PhotoReference, &e.CreatedAt, &e.UserID); err != nil {
			return nil, fmt.Errorf("postgres: scan progress entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error { return s.DB.Close() }
