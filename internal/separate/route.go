// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package separate

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// Mapping holds the section-name routing table and the sex-label display
// table. Both ship with hand-maintained defaults and can be overridden
// from a YAML file.
type Mapping struct {
	// Destinations routes a \subsection name to an output file. Lookup
	// is an exact string match; no normalization is applied. Names
	// absent from the table are excluded from every output.
	Destinations map[string]types.Destination `yaml:"destinations"`

	// SexLabels normalizes raw \subsubsection labels to display labels.
	// Labels absent from the table pass through unchanged.
	SexLabels map[string]string `yaml:"sex_labels"`
}

// DefaultMapping returns the built-in routing tables.
func DefaultMapping() Mapping {
	return Mapping{
		Destinations: map[string]types.Destination{
			// Team records
			"CMS All Time Top 10":                                      types.DestTeam,
			"CMS Axelrood Pool Records":                                types.DestTeam,
			"CMS Frosh Swimming & Diving Records":                      types.DestTeam,
			"Development of Team Records (October 2001 to March 2025)": types.DestTeam,

			// Dual meet records
			"CMS at UCSD":                      types.DestDual,
			"CMS at Cal Baptist Distance Meet": types.DestDual,
			"CMS at PP":                        types.DestDual,
			"CMS at PP Combined":               types.DestDual,

			// Championship records
			"CMS SCIAC Champions":              types.DestChamps,
			"SCIAC All Time Top 10 Performers": types.DestChamps,
			"SCIAC Records":                    types.DestChamps,
			"NCAA TOP 20":                      types.DestChamps,
		},
		SexLabels: map[string]string{
			"Athena": "Athenas",
			"Stag":   "Stags",
			"Women":  "Women",
			"Men":    "Men",
		},
	}
}

// LoadMapping reads routing tables from a YAML file. Entries present in
// the file replace the built-in tables wholesale; an omitted table keeps
// its defaults.
func LoadMapping(path string) (Mapping, error) {
	m := DefaultMapping()
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading mapping file: %w", err)
	}
	var loaded Mapping
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return m, fmt.Errorf("parsing mapping file: %w", err)
	}
	if loaded.Destinations != nil {
		m.Destinations = loaded.Destinations
	}
	if loaded.SexLabels != nil {
		m.SexLabels = loaded.SexLabels
	}
	return m, nil
}

// Route returns the destination for a section name, or false when the
// name is not in the table.
func (m Mapping) Route(name string) (types.Destination, bool) {
	d, ok := m.Destinations[name]
	return d, ok
}

// SexLabel returns the display form of a raw sex label, passing unknown
// labels through unchanged.
func (m Mapping) SexLabel(raw string) string {
	if mapped, ok := m.SexLabels[raw]; ok {
		return mapped
	}
	return raw
}
