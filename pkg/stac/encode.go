package stac

import (
	"encoding/json"

	"github.com/trendsearth/stacgen/pkg/errors"
)

// Encode renders a STAC document as pretty-printed JSON with a trailing
// newline. Field order is fixed by the struct definitions and map keys are
// sorted by encoding/json, so encoding the same document twice yields
// identical bytes.
func Encode(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a STAC document from JSON into the given type.
func Decode(data []byte, doc any) error {
	if err := json.Unmarshal(data, doc); err != nil {
		return errors.WrapParse("json", "", err)
	}
	return nil
}
