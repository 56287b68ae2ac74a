package stac

import (
	"path/filepath"
	"strings"
)

// STAC media types for the file formats Trends.Earth produces.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeGeoJSON = "application/geo+json"
	MediaTypeGeoTIFF = "image/tiff; application=geotiff"
	MediaTypeCOG     = "image/tiff; application=geotiff; profile=cloud-optimized"
	MediaTypeText    = "text/plain"
	MediaTypeCSV     = "text/csv"
	MediaTypePNG     = "image/png"
	MediaTypeJPEG    = "image/jpeg"
)

// Asset references an underlying data file. The file is never copied or
// transformed, only linked.
type Asset struct {
	Href  string   `json:"href" validate:"required"`
	Type  string   `json:"type,omitempty"`
	Title string   `json:"title,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// NewAsset creates an asset for the given href with a media type inferred
// from the file extension.
func NewAsset(href string) Asset {
	return Asset{
		Href: href,
		Type: MediaTypeForFile(href),
	}
}

// MediaTypeForFile infers a STAC media type from a file name.
// Unknown extensions yield an empty type; STAC allows omitting it.
func MediaTypeForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return MediaTypeJSON
	case ".geojson":
		return MediaTypeGeoJSON
	case ".tif", ".tiff":
		return MediaTypeGeoTIFF
	case ".txt", ".log":
		return MediaTypeText
	case ".csv":
		return MediaTypeCSV
	case ".png":
		return MediaTypePNG
	case ".jpg", ".jpeg":
		return MediaTypeJPEG
	default:
		return ""
	}
}
