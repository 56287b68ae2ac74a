package write_test

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendsearth/stacgen/internal/build"
	"github.com/trendsearth/stacgen/internal/config"
	"github.com/trendsearth/stacgen/internal/scan"
	"github.com/trendsearth/stacgen/internal/write"
	"github.com/trendsearth/stacgen/pkg/stac"
)

const summaryJSON = `{
	"id": "task-1",
	"status": "FINISHED",
	"start_date": "2019-01-01T00:00:00Z",
	"end_date": "2019-06-30T00:00:00Z",
	"task_name": "run",
	"script": {"version": "2.1.16"}
}`

func writeFixture(t *testing.T, dataDir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dataDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// generate runs the scan -> build -> write pipeline over dataDir.
func generate(t *testing.T, dataDir, outputDir string) {
	t.Helper()
	ctx := context.Background()

	countries, err := scan.Scan(ctx, dataDir, scan.DefaultDefinitions())
	require.NoError(t, err)

	tree, err := build.Build(ctx, config.CatalogConfig{
		ID:          "trends-earth-catalog",
		Title:       "Trends.Earth STAC Catalog",
		Description: "A STAC catalog for organizing Trends.Earth JSON outputs.",
	}, countries, nil)
	require.NoError(t, err)

	require.NoError(t, write.New(outputDir, dataDir).Write(ctx, tree))
}

func readDoc(t *testing.T, path string, doc any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, stac.Decode(data, doc))
}

func TestWriteLayoutAndLinks(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "catalog")
	writeFixture(t, dataDir, map[string]string{
		"colombia/drought_summary.json": summaryJSON,
		"colombia/drought.tif":          "tif",
	})

	generate(t, dataDir, outputDir)

	var cat stac.Catalog
	readDoc(t, filepath.Join(outputDir, "catalog.json"), &cat)
	require.NoError(t, cat.Validate())

	child := stac.FindLink(cat.Links, stac.RelChild)
	require.NotNil(t, child)
	assert.Equal(t, "./colombia-collection/collection.json", child.Href)

	var col stac.Collection
	readDoc(t, filepath.Join(outputDir, "colombia-collection", "collection.json"), &col)
	require.NoError(t, col.Validate())
	assert.Equal(t, "../catalog.json", stac.FindLink(col.Links, stac.RelRoot).Href)
	assert.Equal(t, "./colombia_drought/colombia_drought.json", stac.FindLink(col.Links, stac.RelItem).Href)

	var item stac.Item
	itemPath := filepath.Join(outputDir, "colombia-collection", "colombia_drought", "colombia_drought.json")
	readDoc(t, itemPath, &item)
	require.NoError(t, item.Validate())
	assert.Equal(t, "../../catalog.json", stac.FindLink(item.Links, stac.RelRoot).Href)
	assert.Equal(t, "../collection.json", stac.FindLink(item.Links, stac.RelParent).Href)
	assert.Equal(t, "colombia-collection", item.Collection)

	// Items carrying a collection field must also link to the collection.
	collLink := stac.FindLink(item.Links, stac.RelCollection)
	require.NotNil(t, collLink)
	assert.Equal(t, "../collection.json", collLink.Href)
}

func TestWriteAssetHrefsResolve(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "catalog")
	writeFixture(t, dataDir, map[string]string{
		"colombia/drought_summary.json": summaryJSON,
		"colombia/drought.tif":          "tif",
		"colombia/nested/drought.json":  "{}",
	})

	generate(t, dataDir, outputDir)

	itemPath := filepath.Join(outputDir, "colombia-collection", "colombia_drought", "colombia_drought.json")
	var item stac.Item
	readDoc(t, itemPath, &item)

	require.NotEmpty(t, item.Assets)
	for key, asset := range item.Assets {
		resolved := filepath.Join(filepath.Dir(itemPath), filepath.FromSlash(asset.Href))
		_, err := os.Stat(resolved)
		assert.NoError(t, err, "asset %s href %s must resolve", key, asset.Href)
	}
}

func hashTree(t *testing.T, root string) map[string][32]byte {
	t.Helper()
	hashes := map[string][32]byte{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		hashes[rel] = sha256.Sum256(data)
		return nil
	})
	require.NoError(t, err)
	return hashes
}

func TestWriteIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "catalog")
	writeFixture(t, dataDir, map[string]string{
		"colombia/drought_summary.json":    summaryJSON,
		"colombia/drought.tif":             "tif",
		"colombia/sdg-15-3-1_summary.json": summaryJSON,
		"colombia/sdg-15-3-1.json":         "{}",
		"peru/drought.tif":                 "tif",
	})

	generate(t, dataDir, outputDir)
	first := hashTree(t, outputDir)

	generate(t, dataDir, outputDir)
	second := hashTree(t, outputDir)

	assert.Equal(t, first, second)
}

func TestWriteIncrementalDataset(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "catalog")
	writeFixture(t, dataDir, map[string]string{
		"colombia/drought_summary.json": summaryJSON,
		"colombia/drought.tif":          "tif",
	})

	generate(t, dataDir, outputDir)
	before := hashTree(t, outputDir)

	// One new dataset for a new country.
	writeFixture(t, dataDir, map[string]string{
		"peru/sdg-15-3-1.json": "{}",
	})
	generate(t, dataDir, outputDir)
	after := hashTree(t, outputDir)

	newItem := filepath.Join("peru-collection", "peru_sdg_15_3_1", "peru_sdg_15_3_1.json")
	assert.Contains(t, after, newItem)
	assert.Contains(t, after, filepath.Join("peru-collection", "collection.json"))

	// Prior item documents are unchanged; only the root catalog gained a child link.
	prior := filepath.Join("colombia-collection", "colombia_drought", "colombia_drought.json")
	assert.Equal(t, before[prior], after[prior])
	assert.Equal(t, before[filepath.Join("colombia-collection", "collection.json")],
		after[filepath.Join("colombia-collection", "collection.json")])
	assert.NotEqual(t, before["catalog.json"], after["catalog.json"])
}

func TestWriteReplacesStaleOutput(t *testing.T) {
	dataDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "catalog")
	writeFixture(t, dataDir, map[string]string{
		"colombia/drought_summary.json": summaryJSON,
		"colombia/drought.tif":          "tif",
	})

	// Pre-existing junk in the output tree is removed wholesale.
	writeFixture(t, outputDir, map[string]string{"stale/old.json": "{}"})

	generate(t, dataDir, outputDir)

	_, err := os.Stat(filepath.Join(outputDir, "stale"))
	assert.True(t, os.IsNotExist(err))
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "peru-collection/collection.json", write.CollectionPath("peru-collection"))
	assert.Equal(t, "peru-collection/peru_drought/peru_drought.json", write.ItemPath("peru-collection", "peru_drought"))
}
