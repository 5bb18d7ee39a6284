package catalog

import "sort"

// Defaults applied whenever a soil profile omits (or zeroes) the field.
// They also parameterize the fallback recommendation for unknown pairs.
const (
	DefaultCostPerTree    = 500.0
	DefaultMaturityMonths = 24
)

// SoilProfile is what the catalog knows about planting one soil type in
// one region. The lists keep document order and any of them may be empty;
// native trees are only ever used when both primary lists contribute
// nothing.
type SoilProfile struct {
	FruitTrees     []string `json:"fruit_trees,omitempty" yaml:"fruit_trees"`
	OxygenTrees    []string `json:"oxygen_trees,omitempty" yaml:"oxygen_trees"`
	NativeTrees    []string `json:"native_trees,omitempty" yaml:"native_trees"`
	CostPerTree    float64  `json:"cost_per_tree,omitempty" yaml:"cost_per_tree"`
	MaturityMonths int      `json:"maturity_months,omitempty" yaml:"maturity_months"`
}

// Catalog is the region × soil lookup table behind every recommendation.
// It is loaded once at startup and never mutated afterward, so concurrent
// readers need no locking.
type Catalog struct {
	Regions map[string]map[string]SoilProfile `json:"regions" yaml:"regions"`
}

// Lookup returns the profile for an exact region/soil pair. The second
// return reports whether the pair exists; a miss is an expected condition,
// not an error.
func (c *Catalog) Lookup(region, soil string) (SoilProfile, bool) {
	if c == nil || c.Regions == nil {
		return SoilProfile{}, false
	}
	soils, ok := c.Regions[region]
	if !ok {
		return SoilProfile{}, false
	}
	prof, ok := soils[soil]
	return prof, ok
}

// HasRegion reports whether the catalog knows the region at all.
func (c *Catalog) HasRegion(region string) bool {
	if c == nil || c.Regions == nil {
		return false
	}
	_, ok := c.Regions[region]
	return ok
}

// RegionNames returns every region name in alphabetical order, ready for
// form dropdowns.
func (c *Catalog) RegionNames() []string {
	if c == nil {
		return []string{}
	}
	names := make([]string, 0, len(c.Regions))
	for name := range c.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
