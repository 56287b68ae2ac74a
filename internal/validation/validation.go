// Package validation checks a generated catalog tree on disk: document
// structure, link integrity, asset resolution, and extent containment.
package validation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trendsearth/stacgen/pkg/constants"
	"github.com/trendsearth/stacgen/pkg/errors"
	"github.com/trendsearth/stacgen/pkg/logging"
	"github.com/trendsearth/stacgen/pkg/stac"
)

// Issue is one violation found while checking a catalog tree.
type Issue struct {
	// Path is the document the violation was found in, relative to the
	// catalog root.
	Path string

	// Message describes the violation.
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Check walks the catalog tree rooted at catalogDir and returns every
// violation found. A tree that cannot be read at all yields an error
// instead.
func Check(ctx context.Context, catalogDir string) ([]Issue, error) {
	log := logging.Ctx(ctx)

	checker := &checker{root: catalogDir}

	catalogPath := filepath.Join(catalogDir, constants.CatalogFileName)
	var cat stac.Catalog
	if err := checker.load(catalogPath, &cat); err != nil {
		return nil, err
	}
	checker.document(constants.CatalogFileName, &cat)

	seenCollections := map[string]bool{}
	for _, link := range cat.Links {
		if link.Rel != stac.RelChild {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		checker.collection(link.Href, seenCollections)
	}

	log.Info().
		Str("catalog", catalogPath).
		Int("issues", len(checker.issues)).
		Msg("Validation finished")
	return checker.issues, nil
}

type checker struct {
	root   string
	issues []Issue
}

func (c *checker) report(path, format string, args ...any) {
	c.issues = append(c.issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// load reads and decodes one document from the tree.
func (c *checker) load(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := stac.Decode(data, doc); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}

// document runs structural validation and records any failure as an issue.
func (c *checker) document(relPath string, doc interface{ Validate() error }) bool {
	if err := doc.Validate(); err != nil {
		c.report(relPath, "structural validation failed: %v", err)
		return false
	}
	return true
}

// collection checks one collection document and all its items.
func (c *checker) collection(childHref string, seen map[string]bool) {
	relPath := filepath.FromSlash(childHref)
	fullPath := filepath.Join(c.root, relPath)

	var col stac.Collection
	if err := c.load(fullPath, &col); err != nil {
		c.report(childHref, "unreadable collection: %v", err)
		return
	}
	if !c.document(childHref, &col) {
		return
	}

	if seen[col.ID] {
		c.report(childHref, "duplicate collection id %q", col.ID)
	}
	seen[col.ID] = true

	interval := c.temporalInterval(childHref, &col)

	colDir := filepath.Dir(fullPath)
	seenItems := map[string]bool{}
	for _, link := range col.Links {
		if link.Rel != stac.RelItem {
			continue
		}
		c.item(&col, colDir, link.Href, interval, seenItems)
	}
}

// temporalInterval parses a collection's first temporal interval, reporting
// unparseable endpoints. Nil endpoints mean the interval is open.
func (c *checker) temporalInterval(relPath string, col *stac.Collection) [2]*time.Time {
	var interval [2]*time.Time
	if len(col.Extent.Temporal.Interval) == 0 {
		return interval
	}
	for i, endpoint := range col.Extent.Temporal.Interval[0] {
		if i > 1 || endpoint == nil {
			break
		}
		t, err := stac.ParseDatetime(*endpoint)
		if err != nil {
			c.report(relPath, "unparseable temporal endpoint %q", *endpoint)
			continue
		}
		interval[i] = &t
	}
	return interval
}

// item checks one item document: structure, collection membership, extent
// containment, and asset resolution.
func (c *checker) item(col *stac.Collection, colDir, itemHref string, interval [2]*time.Time, seen map[string]bool) {
	itemPath := filepath.Join(colDir, filepath.FromSlash(itemHref))
	relPath, err := filepath.Rel(c.root, itemPath)
	if err != nil {
		relPath = itemHref
	}

	var item stac.Item
	if err := c.load(itemPath, &item); err != nil {
		c.report(relPath, "unreadable item: %v", err)
		return
	}
	if !c.document(relPath, &item) {
		return
	}

	if seen[item.ID] {
		c.report(relPath, "duplicate item id %q", item.ID)
	}
	seen[item.ID] = true

	if item.Collection != "" && item.Collection != col.ID {
		c.report(relPath, "item belongs to %q, expected %q", item.Collection, col.ID)
	}
	if item.Collection != "" && stac.FindLink(item.Links, stac.RelCollection) == nil {
		c.report(relPath, "item has a collection field but no collection link")
	}

	ts, err := item.Datetime()
	if err != nil {
		c.report(relPath, "missing or unparseable datetime property")
	} else {
		if interval[0] != nil && ts.Before(*interval[0]) {
			c.report(relPath, "datetime %s precedes collection interval start", stac.FormatDatetime(ts))
		}
		if interval[1] != nil && ts.After(*interval[1]) {
			c.report(relPath, "datetime %s exceeds collection interval end", stac.FormatDatetime(ts))
		}
	}

	if item.BBox != nil && len(col.Extent.Spatial.BBox) > 0 {
		if !stac.Contains(col.Extent.Spatial.BBox[0], item.BBox) {
			c.report(relPath, "item bbox extends beyond collection spatial extent")
		}
	}

	itemDir := filepath.Dir(itemPath)
	for _, key := range item.AssetKeys() {
		asset := item.Assets[key]
		target := filepath.Join(itemDir, filepath.FromSlash(asset.Href))
		if _, err := os.Stat(target); err != nil {
			c.report(relPath, "asset %q href %q does not resolve", key, asset.Href)
		}
	}
}
