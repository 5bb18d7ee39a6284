package models

// Recommendation is the plant selection for one region/soil pair, together
// with the per-tree cost and maturity horizon the impact projections use.
//
// Plants preserves catalog document order and never contains duplicates.
// An unknown region/soil pair still produces a Recommendation (empty list,
// default cost and maturity), never an error.
type Recommendation struct {
	Plants         []string `json:"plants"`
	CostPerTree    float64  `json:"cost_per_tree"`
	MaturityMonths int      `json:"maturity_months"`
}
