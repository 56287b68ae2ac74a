package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinitionsDefaults(t *testing.T) {
	defs, err := LoadDefinitions("")
	require.NoError(t, err)
	require.Len(t, defs.Kinds, 2)
	assert.Equal(t, "drought", defs.Kinds[0].Name)
	assert.Equal(t, "sdg-15-3-1", defs.Kinds[1].Name)
	assert.Equal(t, "drought_summary.json", defs.Kinds[0].SummaryFile())
}

func TestLoadDefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
kinds:
  - name: urban
    summary_key: urban_summary
    summary_path: [results, urban]
  - name: drought
bboxes:
  colombia: [-79.0, -4.3, -66.8, 12.5]
`), 0o644))

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)

	// Kinds come back sorted by name.
	require.Len(t, defs.Kinds, 2)
	assert.Equal(t, "drought", defs.Kinds[0].Name)
	assert.Equal(t, "urban", defs.Kinds[1].Name)
	assert.Equal(t, []string{"results", "urban"}, defs.Kinds[1].SummaryPath)
	assert.Equal(t, []float64{-79.0, -4.3, -66.8, 12.5}, defs.BBoxes["colombia"])
}

func TestLoadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no kinds", "bboxes: {}"},
		{"kind without name", "kinds:\n  - match: x"},
		{"bad bbox", "kinds:\n  - name: drought\nbboxes:\n  peru: [1, 2]"},
		{"malformed yaml", "kinds: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "datasets.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadDefinitions(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
