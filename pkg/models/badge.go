package models

// Badge is a derived achievement label. Badges are recomputed from the
// submission count on every read and never stored.
type Badge string

const (
	BadgeFirstSubmission Badge = "FirstSubmission"
	BadgeConsistent      Badge = "Consistent"
	BadgeStoryteller     Badge = "Storyteller"
)
