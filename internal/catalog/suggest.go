package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestRegions returns up to max catalog region names close to the
// given (presumably misspelled) input, best match first. Matching is
// case-insensitive; lookups themselves stay exact, so a caller typically
// asks for suggestions only after a miss. No close match means no
// suggestions, never an error.
func SuggestRegions(c *Catalog, input string, max int) []string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" || max <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	var near []scored
	for _, name := range c.RegionNames() {
		cand := strings.ToLower(name)
		dist := levenshtein.ComputeDistance(in, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		near = append(near, scored{name: name, dist: dist})
	}

	if len(near) == 0 {
		return nil
	}

	sort.SliceStable(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].name < near[j].name
	})
	if len(near) > max {
		near = near[:max]
	}

	out := make([]string, len(near))
	for i, s := range near {
		out[i] = s.name
	}
	return out
}

// distanceLimit scales the acceptable edit distance with the candidate
// length: short names tolerate one edit, long ones three.
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
