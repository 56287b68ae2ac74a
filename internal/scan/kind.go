package scan

import (
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/trendsearth/stacgen/pkg/errors"
)

// Kind describes one recognized Trends.Earth dataset type. Files in a
// country directory whose names contain Match (other than the summary file
// itself) become assets of that kind's item.
type Kind struct {
	// Name identifies the kind and is used to derive item ids.
	Name string `yaml:"name"`

	// Match is the file-name substring that assigns a file to this kind.
	// Defaults to Name.
	Match string `yaml:"match,omitempty"`

	// SummaryKey is the item property under which the kind-specific
	// summary payload is stored, e.g. "drought_summary".
	SummaryKey string `yaml:"summary_key,omitempty"`

	// SummaryPath is the path of JSON keys leading to that payload
	// inside the summary document.
	SummaryPath []string `yaml:"summary_path,omitempty"`
}

// SummaryFile returns the name of the kind's summary JSON file.
func (k Kind) SummaryFile() string {
	return k.Name + "_summary.json"
}

// Matches reports whether the file belongs to this kind's item.
// The summary file carries item properties, not an asset.
func (k Kind) Matches(fileName string) bool {
	if fileName == k.SummaryFile() {
		return false
	}
	match := k.Match
	if match == "" {
		match = k.Name
	}
	return strings.Contains(fileName, match)
}

// ItemSuffix returns the kind's contribution to an item id, with
// separators normalized the way Trends.Earth names its outputs
// ("sdg-15-3-1" becomes "sdg_15_3_1").
func (k Kind) ItemSuffix() string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(k.Name)
}

// Definitions is the dataset-kind table plus optional per-country
// bounding boxes. It can be overridden with a YAML file.
type Definitions struct {
	Kinds []Kind `yaml:"kinds"`

	// BBoxes maps a country directory name to its bounding box
	// (west, south, east, north).
	BBoxes map[string][]float64 `yaml:"bboxes,omitempty"`
}

// DefaultDefinitions returns the built-in dataset kinds: the drought
// vulnerability and SDG 15.3.1 land degradation outputs.
func DefaultDefinitions() Definitions {
	return Definitions{
		Kinds: []Kind{
			{
				Name:        "drought",
				SummaryKey:  "drought_summary",
				SummaryPath: []string{"results", "data", "report", "drought"},
			},
			{
				Name:        "sdg-15-3-1",
				SummaryKey:  "sdg_summary",
				SummaryPath: []string{"land_condition", "baseline", "sdg", "summary"},
			},
		},
	}
}

// LoadDefinitions reads a definitions file, or returns the defaults when
// path is empty.
func LoadDefinitions(path string) (Definitions, error) {
	if path == "" {
		return DefaultDefinitions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Definitions{}, errors.WrapIO("read", path, err)
	}

	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return Definitions{}, errors.WrapParse("yaml", path, err)
	}
	if len(defs.Kinds) == 0 {
		return Definitions{}, errors.NewValidationError("kinds", nil, "definitions file declares no dataset kinds")
	}
	for _, k := range defs.Kinds {
		if k.Name == "" {
			return Definitions{}, errors.NewValidationError("kinds.name", nil, "dataset kind without a name")
		}
	}
	for country, bbox := range defs.BBoxes {
		if len(bbox) != 4 {
			return Definitions{}, errors.NewValidationError("bboxes."+country, bbox, "bounding box must have four values")
		}
	}

	sort.Slice(defs.Kinds, func(i, j int) bool { return defs.Kinds[i].Name < defs.Kinds[j].Name })
	return defs, nil
}
