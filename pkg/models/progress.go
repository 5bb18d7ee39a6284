package models

// ProgressEntry is one row of the append-only plot log.
//
// Region, soil and area are recorded exactly as submitted; the ledger does
// not re-validate them. CreatedAt is a zero-padded "YYYY-MM-DD HH:MM:SS"
// UTC string, so lexicographic order equals chronological order. UserID is
// an opaque caller-supplied identifier and empty for anonymous submissions.
type ProgressEntry struct {
	Region         string `json:"region"`
	Soil           string `json:"soil"`
	AreaSqM        string `json:"area_sqm"`
	Note           string `json:"note,omitempty"`
	PhotoReference string `json:"photo_reference"`
	CreatedAt      string `json:"created_at"`
	UserID         string `json:"user_id,omitempty"`
}
