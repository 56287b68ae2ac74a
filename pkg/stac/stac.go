// Package stac models the SpatioTemporal Asset Catalog (STAC) documents this
// tool generates: catalogs, collections, items, and assets, together with the
// link and extent structures the STAC 1.0.0 specification requires.
//
// The types marshal to spec-compliant JSON with a stable field order so that
// regenerating an unchanged catalog produces byte-identical output. Structural
// requirements from the specification are expressed as validate tags and
// checked through each type's Validate method.
package stac

import "github.com/go-playground/validator/v10"

// Version is the STAC specification version written to every document.
const Version = "1.0.0"

// Document type discriminators.
const (
	TypeCatalog    = "Catalog"
	TypeCollection = "Collection"
	TypeFeature    = "Feature"
)

// validate is the shared validator instance for document checks.
var validate = validator.New()
