package stac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	cat := NewCatalog("trends-earth-catalog", "Trends.Earth STAC Catalog", "Organizes Trends.Earth JSON outputs.")

	assert.Equal(t, TypeCatalog, cat.Type)
	assert.Equal(t, Version, cat.StacVersion)
	assert.Empty(t, cat.Links)
	require.NoError(t, cat.Validate())
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(*Catalog) {},
		},
		{
			name:    "missing id",
			mutate:  func(c *Catalog) { c.ID = "" },
			wantErr: true,
		},
		{
			name:    "missing description",
			mutate:  func(c *Catalog) { c.Description = "" },
			wantErr: true,
		},
		{
			name:    "wrong type discriminator",
			mutate:  func(c *Catalog) { c.Type = "Collection" },
			wantErr: true,
		},
		{
			name: "link without href",
			mutate: func(c *Catalog) {
				c.Links = append(c.Links, Link{Rel: RelChild})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := NewCatalog("id", "title", "description")
			tt.mutate(cat)
			err := cat.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCollectionLinksAndValidate(t *testing.T) {
	extent := NewExtent(WorldBBox, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	col := NewCollection("peru-collection", "Peru Datasets", "STAC Collection for peru datasets", "proprietary", extent)
	col.AddItem("./peru_drought/peru_drought.json", "peru_drought")

	require.NoError(t, col.Validate())
	link := FindLink(col.Links, RelItem)
	require.NotNil(t, link)
	assert.Equal(t, MediaTypeJSON, link.Type)

	col.License = ""
	assert.Error(t, col.Validate())
}

func TestCollectionValidateRejectsEmptyBBox(t *testing.T) {
	col := NewCollection("x-collection", "", "desc", "proprietary", Extent{
		Spatial:  SpatialExtent{BBox: [][]float64{}},
		Temporal: TemporalExtent{Interval: [][]*string{}},
	})
	assert.Error(t, col.Validate())
}

func TestNewItem(t *testing.T) {
	ts := time.Date(2019, 3, 15, 12, 0, 0, 0, time.UTC)
	item := NewItem("colombia_drought", ts, map[string]any{"status": "FINISHED"})

	assert.Equal(t, TypeFeature, item.Type)
	assert.Nil(t, item.Geometry)
	assert.Equal(t, "FINISHED", item.Properties["status"])
	assert.Equal(t, "2019-03-15T12:00:00Z", item.Properties[DatetimeProperty])

	got, err := item.Datetime()
	require.NoError(t, err)
	assert.True(t, got.Equal(ts))
}

func TestItemAssets(t *testing.T) {
	item := NewItem("colombia_drought", time.Now().UTC(), nil)
	item.AddAsset("drought_tif", NewAsset("../../data/colombia/drought.tif"))
	item.AddAsset("drought_json", NewAsset("../../data/colombia/drought.json"))

	assert.Equal(t, []string{"drought_json", "drought_tif"}, item.AssetKeys())
	assert.Equal(t, MediaTypeGeoTIFF, item.Assets["drought_tif"].Type)
	require.NoError(t, item.Validate())
}

func TestItemValidate(t *testing.T) {
	item := NewItem("", time.Now().UTC(), nil)
	assert.Error(t, item.Validate())

	item = NewItem("ok", time.Now().UTC(), nil)
	item.BBox = []float64{0, 1}
	assert.Error(t, item.Validate(), "bbox must have at least four values")
}

func TestMediaTypeForFile(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"drought.json", MediaTypeJSON},
		{"aoi.geojson", MediaTypeGeoJSON},
		{"sdg-15-3-1.tif", MediaTypeGeoTIFF},
		{"sdg-15-3-1.TIFF", MediaTypeGeoTIFF},
		{"report.csv", MediaTypeCSV},
		{"run.log", MediaTypeText},
		{"preview.png", MediaTypePNG},
		{"photo.jpeg", MediaTypeJPEG},
		{"archive.zip", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaTypeForFile(tt.file))
		})
	}
}

func TestUnionBBox(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{
			name: "disjoint boxes",
			a:    []float64{-75, -5, -70, 0},
			b:    []float64{-68, 2, -66, 5},
			want: []float64{-75, -5, -66, 5},
		},
		{
			name: "nil first",
			a:    nil,
			b:    []float64{1, 2, 3, 4},
			want: []float64{1, 2, 3, 4},
		},
		{
			name: "nil second",
			a:    []float64{1, 2, 3, 4},
			b:    nil,
			want: []float64{1, 2, 3, 4},
		},
		{
			name: "contained box",
			a:    []float64{-10, -10, 10, 10},
			b:    []float64{-1, -1, 1, 1},
			want: []float64{-10, -10, 10, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnionBBox(tt.a, tt.b))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(WorldBBox, []float64{-75, -5, -70, 0}))
	assert.False(t, Contains([]float64{0, 0, 1, 1}, []float64{0, 0, 2, 1}))
	assert.False(t, Contains(nil, []float64{0, 0, 1, 1}))
}

func TestEncodeDeterministic(t *testing.T) {
	item := NewItem("peru_sdg_15_3_1", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), map[string]any{
		"task_name": "sdg runs",
		"progress":  float64(100),
	})
	item.AddAsset("b_asset", NewAsset("b.json"))
	item.AddAsset("a_asset", NewAsset("a.tif"))

	first, err := Encode(item)
	require.NoError(t, err)
	second, err := Encode(item)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, byte('\n'), first[len(first)-1])

	var decoded Item
	require.NoError(t, Decode(first, &decoded))
	assert.Equal(t, item.ID, decoded.ID)
	assert.Equal(t, item.AssetKeys(), decoded.AssetKeys())
}
