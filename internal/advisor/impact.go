package advisor

import "greenplot/pkg/models"

// Rates are the per-tree coefficients behind every impact projection.
// Deliberately approximate; kept as data rather than constants so a
// deployment can recalibrate without touching call sites.
type Rates struct {
	CO2KgPerTree    float64
	OxygenKgPerTree float64
}

// DefaultRates: a young tree absorbs roughly 20 kg of CO2 and releases
// roughly 22 kg of oxygen per year.
var DefaultRates = Rates{CO2KgPerTree: 20, OxygenKgPerTree: 22}

// Impact projects the yearly environmental totals and the one-time planting
// cost for treeCount trees. A non-positive count produces the all-zero
// Impact so an empty plan never reports phantom totals.
func (r Rates) Impact(treeCount int, costPerTree float64) models.Impact {
	if treeCount <= 0 {
		return models.Impact{}
	}
	n := float64(treeCount)
	return models.Impact{
		CO2KgPerYear:    n * r.CO2KgPerTree,
		OxygenKgPerYear: n * r.OxygenKgPerTree,
		TotalCost:       n * costPerTree,
	}
}
