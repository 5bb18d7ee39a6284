package advisor

import (
	"greenplot/internal/catalog"
	"greenplot/pkg/models"
)

// Engine turns a plot description into a planting recommendation. It holds
// the catalog it consults and the per-tree rates used for projections; both
// are fixed at construction.
type Engine struct {
	Catalog *catalog.Catalog
	Rates   Rates
}

func New(c *catalog.Catalog) *Engine {
	return &Engine{Catalog: c, Rates: DefaultRates}
}

// Recommend picks the plant list plus cost/maturity parameters for one
// region/soil pair. An unknown pair yields the fallback (empty list,
// default cost and maturity) rather than an error: assessment requests
// never fail on a lookup miss.
//
// Selection rules: fruit trees come first when asked for, oxygen trees
// always follow, duplicates keep their first position. Native trees are a
// pure fallback, used verbatim only when the primary lists produced
// nothing.
func (e *Engine) Recommend(region, soil string, wantsFruit bool) models.Recommendation {
	prof, ok := e.Catalog.Lookup(region, soil)
	if !ok {
		return models.Recommendation{
			Plants:         []string{},
			CostPerTree:    catalog.DefaultCostPerTree,
			MaturityMonths: catalog.DefaultMaturityMonths,
		}
	}

	plants := make([]string, 0, len(prof.FruitTrees)+len(prof.OxygenTrees))
	seen := make(map[string]struct{}, cap(plants))
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		plants = append(plants, name)
	}

	if wantsFruit {
		for _, p := range prof.FruitTrees {
			add(p)
		}
	}
	for _, p := range prof.OxygenTrees {
		add(p)
	}
	if len(plants) == 0 && len(prof.NativeTrees) > 0 {
		plants = append(plants, prof.NativeTrees...)
	}

	cost := prof.CostPerTree
	if cost <= 0 {
		cost = catalog.DefaultCostPerTree
	}
	maturity := prof.MaturityMonths
	if maturity <= 0 {
		maturity = catalog.DefaultMaturityMonths
	}

	return models.Recommendation{
		Plants:         plants,
		CostPerTree:    cost,
		MaturityMonths: maturity,
	}
}
