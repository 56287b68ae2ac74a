// Package constants provides shared constants used throughout the stacgen codebase.
// This includes file permissions, timeouts, and STAC defaults that should be
// consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants define various timeout durations used in the application
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ServerReadTimeout is the HTTP read timeout for the preview server
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the HTTP write timeout for the preview server
	ServerWriteTimeout = 30 * time.Second

	// ServerShutdownTimeout bounds graceful shutdown of the preview server
	ServerShutdownTimeout = 5 * time.Second
)

// STAC defaults used when input metadata is absent
const (
	// StacVersion is the STAC specification version written to every document
	StacVersion = "1.0.0"

	// DefaultLicense is the license recorded on generated collections
	DefaultLicense = "proprietary"

	// CatalogFileName is the file name of the root catalog document
	CatalogFileName = "catalog.json"

	// CollectionFileName is the file name of each collection document
	CollectionFileName = "collection.json"
)

// TemporalFloor is the earliest datetime Trends.Earth outputs can carry.
// Items with no parseable summary dates fall back to it.
var TemporalFloor = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
