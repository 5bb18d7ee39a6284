package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return &Catalog{Regions: map[string]map[string]SoilProfile{
		"Gujarat": {
			"clayey": {
				FruitTrees:     []string{"Mango", "Guava"},
				OxygenTrees:    []string{"Neem", "Peepal"},
				NativeTrees:    []string{"Banyan"},
				CostPerTree:    450,
				MaturityMonths: 30,
			},
		},
		"Punjab": {
			"loamy": {OxygenTrees: []string{"Shisham"}},
		},
		"Rajasthan": {
			"sandy": {NativeTrees: []string{"Khejri", "Rohida"}},
		},
	}}
}

func TestLookup(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		region string
		soil   string
		found  bool
	}{
		{"Gujarat", "clayey", true},
		{"Gujarat", "sandy", false},
		{"Atlantis", "clayey", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if _, ok := c.Lookup(tt.region, tt.soil); ok != tt.found {
			t.Errorf("Lookup(%q, %q) found = %v; want %v", tt.region, tt.soil, ok, tt.found)
		}
	}

	prof, ok := c.Lookup("Gujarat", "clayey")
	if !ok {
		t.Fatal("Lookup(Gujarat, clayey) missed")
	}
	if prof.CostPerTree != 450 || prof.MaturityMonths != 30 {
		t.Errorf("profile = %+v; want cost 450, maturity 30", prof)
	}
}

func TestLookupNilCatalog(t *testing.T) {
	var c *Catalog
	if _, ok := c.Lookup("Gujarat", "clayey"); ok {
		t.Error("nil catalog Lookup reported a hit")
	}
	if c.HasRegion("Gujarat") {
		t.Error("nil catalog HasRegion reported a hit")
	}
	if got := c.RegionNames(); len(got) != 0 {
		t.Errorf("nil catalog RegionNames = %v; want empty", got)
	}
}

func TestRegionNamesSorted(t *testing.T) {
	got := testCatalog().RegionNames()
	want := []string{"Gujarat", "Punjab", "Rajasthan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RegionNames() = %v; want %v", got, want)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plants.json")
	doc := `{
		"regions": {
			"Kerala": {
				"loamy": {
					"fruit_trees": ["Jackfruit"],
					"oxygen_trees": ["Teak"],
					"cost_per_tree": 520,
					"maturity_months": 26
				}
			}
		}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	prof, ok := c.Lookup("Kerala", "loamy")
	if !ok {
		t.Fatal("loaded catalog missing Kerala/loamy")
	}
	if prof.CostPerTree != 520 || prof.MaturityMonths != 26 {
		t.Errorf("profile = %+v; want cost 520, maturity 26", prof)
	}
	if len(prof.NativeTrees) != 0 {
		t.Errorf("native_trees = %v; want empty when omitted", prof.NativeTrees)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plants.yaml")
	doc := `regions:
  Kerala:
    loamy:
      fruit_trees: [Jackfruit, Mango]
      oxygen_trees: [Teak]
      cost_per_tree: 520
      maturity_months: 26
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	prof, ok := c.Lookup("Kerala", "loamy")
	if !ok {
		t.Fatal("loaded catalog missing Kerala/loamy")
	}
	want := []string{"Jackfruit", "Mango"}
	if !reflect.DeepEqual(prof.FruitTrees, want) {
		t.Errorf("fruit_trees = %v; want %v", prof.FruitTrees, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() on a missing file returned nil error")
	}
}

func TestParseBadDocument(t *testing.T) {
	if _, err := Parse([]byte(`{"regions": "not a map"`), ".json"); err == nil {
		t.Error("Parse() on malformed JSON returned nil error")
	}
}

func TestParseEmptyDocumentHasNoRegions(t *testing.T) {
	c, err := Parse([]byte(`{}`), ".json")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := c.RegionNames(); len(got) != 0 {
		t.Errorf("RegionNames() = %v; want empty", got)
	}
	if _, ok := c.Lookup("Gujarat", "clayey"); ok {
		t.Error("empty catalog Lookup reported a hit")
	}
}

func TestSuggestRegions(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		input string
		want  []string
	}{
		{"Gujrat", []string{"Gujarat"}},
		{"gujarat", []string{"Gujarat"}},
		{"Panjab", []string{"Punjab"}},
		{"Rajashtan", []string{"Rajasthan"}},
		{"Xyzzyplugh", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := SuggestRegions(c, tt.input, 3)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SuggestRegions(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestSuggestRegionsCap(t *testing.T) {
	c := &Catalog{Regions: map[string]map[string]SoilProfile{
		"Karnal": {}, "Karnala": {}, "Karnali": {}, "Karnata": {},
	}}
	got := SuggestRegions(c, "Karnal", 2)
	if len(got) != 2 {
		t.Fatalf("SuggestRegions() returned %d names; want 2", len(got))
	}
	if got[0] != "Karnal" {
		t.Errorf("best suggestion = %q; want exact-distance %q first", got[0], "Karnal")
	}
}
