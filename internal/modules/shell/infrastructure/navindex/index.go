// Package navindex loads the static navigation index compiled into the binary.
package navindex

import (
	_ "embed"
	"fmt"

	"github.com/unilab/labdash/internal/modules/shell/domain"
	"gopkg.in/yaml.v3"
)

//go:embed nav.yaml
var navYAML []byte

// Load parses the embedded index.
func Load() ([]domain.NavEntry, error) {
	return Parse(navYAML)
}

// Parse decodes a YAML list of entries. Every entry needs a title and a route.
func Parse(data []byte) ([]domain.NavEntry, error) {
	var entries []domain.NavEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse navigation index: %w", err)
	}
	for i, e := range entries {
		if e.Title == "" || e.Route == "" {
			return nil, fmt.Errorf("navigation entry %d: title and route are required", i)
		}
		if e.Keywords == nil {
			entries[i].Keywords = []string{}
		}
	}
	return entries, nil
}
