package advisor

import (
	"math"
	"strconv"
	"strings"
)

// Planting densities in trees per square metre. Intensive is the
// close-planting strategy this service recommends; conventional is the
// spacing a traditional plantation uses on the same ground.
const (
	IntensiveTreesPerSqM    = 4.0
	ConventionalTreesPerSqM = 1.5
)

// EstimateIntensive returns the whole number of trees an intensively
// planted plot of the given area holds. Zero, negative and non-finite
// areas count as "no plot" and yield 0.
func EstimateIntensive(areaSqM float64) int {
	return estimate(areaSqM, IntensiveTreesPerSqM)
}

// EstimateConventional is EstimateIntensive at conventional spacing.
func EstimateConventional(areaSqM float64) int {
	return estimate(areaSqM, ConventionalTreesPerSqM)
}

func estimate(areaSqM, perSqM float64) int {
	if math.IsNaN(areaSqM) || math.IsInf(areaSqM, 0) || areaSqM <= 0 {
		return 0
	}
	return int(areaSqM * perSqM)
}

// ParseArea converts a raw form value into square metres. Missing,
// non-numeric and non-finite input all parse to 0, which the estimators
// treat as no plot: a malformed request degrades to zero counts instead of
// failing.
func ParseArea(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
