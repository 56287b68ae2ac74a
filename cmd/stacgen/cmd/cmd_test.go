package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "stacgen")
}

func TestGenerateThenValidate(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "catalog")

	summary := `{"status": "FINISHED", "end_date": "2019-06-30T00:00:00Z"}`
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "colombia"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "colombia", "drought_summary.json"), []byte(summary), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "colombia", "drought.tif"), []byte("tif"), 0o644))

	rootCmd.SetArgs([]string{"generate", "--data", dataDir, "--output", outputDir})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(outputDir, "catalog.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"validate", outputDir})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Catalog is valid")
}
