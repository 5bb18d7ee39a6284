package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog document from disk. The document is a single object
// {"regions": {region: {soil: profile}}}; files ending in .yaml or .yml
// carry the same structure in YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes one catalog document. ext picks the decoder: ".yaml" and
// ".yml" use YAML, everything else is treated as JSON.
func Parse(data []byte, ext string) (*Catalog, error) {
	var c Catalog
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	if c.Regions == nil {
		c.Regions = map[string]map[string]SoilProfile{}
	}
	return &c, nil
}

// MustLoad is Load for program start. The catalog is a hard prerequisite:
// a process that cannot read it has nothing to serve, so this is the one
// place a missing file is fatal.
func MustLoad(path string) *Catalog {
	c, err := Load(path)
	if err != nil {
		log.Fatalf("failed to load plant catalog: %v", err)
	}
	return c
}
