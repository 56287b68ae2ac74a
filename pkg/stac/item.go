package stac

import (
	"sort"
	"time"
)

// DatetimeProperty is the required item property carrying the nominal
// timestamp of the data.
const DatetimeProperty = "datetime"

// Item describes one dataset as a GeoJSON Feature with STAC metadata.
// Trends.Earth task outputs carry no vector geometry, so Geometry is
// typically null and BBox absent.
type Item struct {
	Type        string           `json:"type" validate:"required,eq=Feature"`
	StacVersion string           `json:"stac_version" validate:"required"`
	ID          string           `json:"id" validate:"required"`
	Properties  map[string]any   `json:"properties" validate:"required"`
	Geometry    any              `json:"geometry"`
	BBox        []float64        `json:"bbox,omitempty" validate:"omitempty,min=4,max=6"`
	Links       []Link           `json:"links" validate:"dive"`
	Assets      map[string]Asset `json:"assets" validate:"required,dive"`
	Collection  string           `json:"collection,omitempty"`
}

// NewItem creates an item with the given id and timestamp and no assets.
func NewItem(id string, datetime time.Time, properties map[string]any) *Item {
	props := make(map[string]any, len(properties)+1)
	for k, v := range properties {
		props[k] = v
	}
	props[DatetimeProperty] = FormatDatetime(datetime)

	return &Item{
		Type:        TypeFeature,
		StacVersion: Version,
		ID:          id,
		Properties:  props,
		Geometry:    nil,
		Links:       []Link{},
		Assets:      map[string]Asset{},
	}
}

// AddAsset attaches an asset under the given key, replacing any previous
// asset with the same key.
func (i *Item) AddAsset(key string, asset Asset) {
	i.Assets[key] = asset
}

// AssetKeys returns the item's asset keys in lexicographic order.
func (i *Item) AssetKeys() []string {
	keys := make([]string, 0, len(i.Assets))
	for k := range i.Assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Datetime parses the item's datetime property.
func (i *Item) Datetime() (time.Time, error) {
	s, _ := i.Properties[DatetimeProperty].(string)
	return ParseDatetime(s)
}

// Validate checks the item against STAC structural requirements.
func (i *Item) Validate() error {
	return validate.Struct(i)
}
