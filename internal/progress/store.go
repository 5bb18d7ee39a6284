package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"greenplot/pkg/models"
)

// Store is the ledger's persistence capability. Append must be atomic with
// respect to concurrent appends so submissions cannot overwrite each other;
// All returns entries in append order.
type Store interface {
	Append(ctx context.Context, entry models.ProgressEntry) error
	All(ctx context.Context) ([]models.ProgressEntry, error)
	Close() error
}

// FileStore keeps the ledger as a single JSON list-of-objects document.
// Every append is a full read-modify-write cycle under one mutex, which is
// plenty for the submission rates a community plot log sees.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure ledger dir: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Append(ctx context.Context, entry models.ProgressEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.readLocked(), entry)
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) All(ctx context.Context) ([]models.ProgressEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(), nil
}

// readLocked loads the persisted document. A missing, empty or malformed
// document (including one that is not a JSON list) reads as the empty
// ledger: history degrades, appends start a fresh document, the process
// keeps serving.
func (s *FileStore) readLocked() []models.ProgressEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[ledger] read %s: %v (treating as empty)", s.path, err)
		}
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var entries []models.ProgressEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[ledger] malformed document %s: %v (treating as empty)", s.path, err)
		return nil
	}
	return entries
}

func (s *FileStore) Close() error { return nil }
