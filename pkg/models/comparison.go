package models

type IntensivePlan struct {
	Recommendation Recommendation `json:"recommendation"`
	TreeCount      int            `json:"tree_count"`
	Impact         Impact         `json:"impact"`
}

type ConventionalPlan struct {
	TreeCount      int     `json:"tree_count"`
	CostPerTree    float64 `json:"cost_per_tree"`
	MaturityMonths int     `json:"maturity_months"`
	Impact         Impact  `json:"impact"`
}

// Ratios relate the intensive plan to the conventional baseline, each
// rounded to one decimal. A ratio is exactly 0 when its denominator is
// zero; it is never NaN or Inf.
type Ratios struct {
	Trees float64 `json:"trees_ratio"`
	Cost  float64 `json:"cost_ratio"`
	Speed float64 `json:"speed_ratio"`
}

// Comparison is the side-by-side projection of the intensive strategy
// against a conventional plantation on the same plot.
type Comparison struct {
	Intensive    IntensivePlan    `json:"intensive"`
	Conventional ConventionalPlan `json:"conventional"`
	Ratios       Ratios           `json:"ratios"`
}
