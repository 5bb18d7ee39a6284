package models

// Impact is the projected yearly environmental effect and the one-time
// planting cost for a tree count. All three fields are zero when the plan
// has no trees.
type Impact struct {
	CO2KgPerYear    float64 `json:"co2_kg_per_year"`
	OxygenKgPerYear float64 `json:"oxygen_kg_per_year"`
	TotalCost       float64 `json:"total_cost"`
}
