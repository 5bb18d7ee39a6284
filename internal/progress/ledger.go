package progress

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"greenplot/pkg/models"
)

// timeLayout is zero-padded so lexicographic order on CreatedAt equals
// chronological order.
const timeLayout = "2006-01-02 15:04:05"

// Ledger is the append-only log of plot submissions. All persistence goes
// through its Store; reads hand out fresh slices, so callers can never
// mutate the log.
type Ledger struct {
	store Store
	now   func() time.Time

	mu   sync.Mutex
	last string // highest CreatedAt issued by this process
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Append records one submission and returns the completed entry. The bool
// is the only failure signal the ledger exposes: false means not saved,
// either because the photo reference is empty (the upload was rejected or
// absent) or because the store write failed. Nothing here panics or turns
// into a request error.
func (l *Ledger) Append(ctx context.Context, entry models.ProgressEntry) (models.ProgressEntry, bool) {
	if strings.TrimSpace(entry.PhotoReference) == "" {
		return models.ProgressEntry{}, false
	}
	entry.Note = strings.TrimSpace(entry.Note)
	entry.CreatedAt = l.stamp()

	if err := l.store.Append(ctx, entry); err != nil {
		log.Printf("[ledger] append failed: %v", err)
		return models.ProgressEntry{}, false
	}
	return entry, true
}

// stamp issues the CreatedAt string. Clamped against the previous one so a
// wall-clock step backwards cannot break the non-decreasing order within
// this process.
func (l *Ledger) stamp() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.now().UTC().Format(timeLayout)
	if s < l.last {
		s = l.last
	}
	l.last = s
	return s
}

// All returns every entry in append order. Store trouble degrades to an
// empty history.
func (l *Ledger) All(ctx context.Context) []models.ProgressEntry {
	entries, err := l.store.All(ctx)
	if err != nil {
		log.Printf("[ledger] read failed: %v", err)
		return []models.ProgressEntry{}
	}
	if entries == nil {
		entries = []models.ProgressEntry{}
	}
	return entries
}

// ForUser returns the given user's entries, newest first; ties keep their
// append order. The empty id identifies nobody: anonymous entries live in
// All but never in a per-user view.
func (l *Ledger) ForUser(ctx context.Context, userID string) []models.ProgressEntry {
	out := []models.ProgressEntry{}
	if userID == "" {
		return out
	}
	for _, e := range l.All(ctx) {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
