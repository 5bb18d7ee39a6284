package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"greenplot/internal/progress"
	"greenplot/pkg/models"
	"greenplot/pkg/utils"
)

// Exports the full progress ledger from whichever backend the environment
// configures, for offline analysis of community planting activity.
func main() {
	out := flag.String("out", "data/progress_log.csv", "output CSV path")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := utils.Load()
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open ledger store (%s): %v", cfg.LedgerBackend, err)
	}
	defer store.Close()

	entries, err := store.All(ctx)
	if err != nil {
		log.Fatalf("read ledger failed: %v", err)
	}

	if err := writeCSV(*out, entries); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("exported %d progress entries to %s", len(entries), *out)
}

func openStore(cfg utils.Config) (progress.Store, error) {
	switch cfg.LedgerBackend {
	case "sqlite":
		return progress.NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		return progress.NewPostgresStore(cfg.DSN())
	default:
		return progress.NewFileStore(cfg.LedgerPath)
	}
}

func writeCSV(path string, entries []models.ProgressEntry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"region", "soil", "area_sqm", "note", "photo_reference", "created_at", "user_id"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write([]string{
			e.Region,
			e.Soil,
			e.AreaSqM,
			e.Note,
			e.PhotoReference,
			e.CreatedAt,
			e.UserID,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
