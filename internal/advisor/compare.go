package advisor

import (
	"math"

	"greenplot/pkg/models"
)

// Conventional-baseline policy: a traditional plantation pays less per tree
// (bulk saplings, no soil preparation) and waits twice as long for canopy.
const (
	ConventionalCostFactor     = 0.85
	ConventionalMaturityFactor = 2
)

// Compare runs the full intensive-versus-conventional projection for one
// plot. The same recommendation feeds both sides; only density, per-tree
// cost and maturity differ. Both plans and all three ratios are always
// present in the result, zero-valued where the plot contributes nothing.
func (e *Engine) Compare(region, soil string, wantsFruit bool, areaSqM float64) models.Comparison {
	rec := e.Recommend(region, soil, wantsFruit)

	intCount := EstimateIntensive(areaSqM)
	intensive := models.IntensivePlan{
		Recommendation: rec,
		TreeCount:      intCount,
		Impact:         e.Rates.Impact(intCount, rec.CostPerTree),
	}

	convCount := EstimateConventional(areaSqM)
	convCost := math.Floor(rec.CostPerTree * ConventionalCostFactor)
	convMaturity := rec.MaturityMonths * ConventionalMaturityFactor
	conventional := models.ConventionalPlan{
		TreeCount:      convCount,
		CostPerTree:    convCost,
		MaturityMonths: convMaturity,
		Impact:         e.Rates.Impact(convCount, convCost),
	}

	return models.Comparison{
		Intensive:    intensive,
		Conventional: conventional,
		Ratios: models.Ratios{
			Trees: ratio(float64(intCount), float64(convCount)),
			Cost:  ratio(intensive.Impact.TotalCost, conventional.Impact.TotalCost),
			Speed: ratio(float64(convMaturity), float64(rec.MaturityMonths)),
		},
	}
}

// ratio rounds num/den to one decimal place, reporting exactly 0 instead of
// dividing when the denominator is zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(num/den*10) / 10
}
