package progress

import "greenplot/pkg/models"

// badgeLadder maps submission-count thresholds to the badge earned at that
// level, in ascending order. A user holds every badge whose threshold
// their count meets, so badges are monotonic: more submissions never lose
// one.
var badgeLadder = []struct {
	min   int
	badge models.Badge
}{
	{1, models.BadgeFirstSubmission},
	{3, models.BadgeConsistent},
	{5, models.BadgeStoryteller},
}

// BadgesFor derives the achievement labels for a submission count.
func BadgesFor(count int) []models.Badge {
	badges := make([]models.Badge, 0, len(badgeLadder))
	for _, rung := range badgeLadder {
		if count >= rung.min {
			badges = append(badges, rung.badge)
		}
	}
	return badges
}
