package feed

import "greenplot/pkg/models"

// Event is what feed watchers receive when the ledger grows.
type Event struct {
	Type           string `json:"type"` // "progress.created"
	Region         string `json:"region"`
	Soil           string `json:"soil"`
	PhotoReference string `json:"photo_reference"`
	CreatedAt      string `json:"created_at"`
	UserID         string `json:"user_id,omitempty"`
}

// NewEntryEvent shapes the broadcast for one stored entry. The note stays
// out: it belongs to the submitter's own history, not the public feed.
func NewEntryEvent(e models.ProgressEntry) Event {
	return Event{
		Type:           "progress.created",
		Region:         e.Region,
		Soil:           e.Soil,
		PhotoReference: e.PhotoReference,
		CreatedAt:      e.CreatedAt,
		UserID:         e.UserID,
	}
}
