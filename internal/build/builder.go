// Package build maps scanned Trends.Earth datasets to the STAC object
// hierarchy: one collection per country, one item per country and dataset
// kind, one asset per output file.
package build

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/trendsearth/stacgen/internal/config"
	"github.com/trendsearth/stacgen/internal/scan"
	"github.com/trendsearth/stacgen/pkg/constants"
	"github.com/trendsearth/stacgen/pkg/errors"
	"github.com/trendsearth/stacgen/pkg/logging"
	"github.com/trendsearth/stacgen/pkg/stac"
)

// titleCaser renders country directory names as English titles for
// collection titles ("burkina-faso" -> "Burkina Faso").
var titleCaser = cases.Title(language.English)

// Tree is the fully built catalog hierarchy, ready for serialization.
type Tree struct {
	Catalog     *stac.Catalog
	Collections []*CollectionNode
}

// CollectionNode pairs a collection with its items.
type CollectionNode struct {
	Collection *stac.Collection
	Items      []*stac.Item
}

// Build assembles the catalog hierarchy from scanned countries. The bboxes
// map optionally supplies per-country bounding boxes; countries without one
// fall back to the world bbox and items carry no bbox at all.
//
// Asset hrefs in the returned tree are still relative to the data
// directory; the writer rewrites them relative to each item document.
func Build(ctx context.Context, cfg config.CatalogConfig, countries []scan.Country, bboxes map[string][]float64) (*Tree, error) {
	log := logging.Ctx(ctx)

	tree := &Tree{
		Catalog: stac.NewCatalog(cfg.ID, cfg.Title, cfg.Description),
	}

	for _, country := range countries {
		node := buildCollection(country, bboxes[country.Name])
		log.Info().
			Str("country", country.Name).
			Int("items", len(node.Items)).
			Msg("Built collection")
		tree.Collections = append(tree.Collections, node)
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

// buildCollection maps one country to a collection node with its items.
func buildCollection(country scan.Country, bbox []float64) *CollectionNode {
	var (
		items      []*stac.Item
		start, end time.Time
		itemsBBox  []float64
	)

	colID := country.Name + "-collection"
	for _, ds := range country.Datasets {
		item := stac.NewItem(country.Name+"_"+ds.Kind.ItemSuffix(), ds.Datetime, ds.Properties)
		item.Collection = colID
		if bbox != nil {
			item.BBox = bbox
		}
		for key, href := range ds.Assets {
			item.AddAsset(key, stac.NewAsset(href))
		}
		items = append(items, item)

		if start.IsZero() || ds.Datetime.Before(start) {
			start = ds.Datetime
		}
		if ds.Datetime.After(end) {
			end = ds.Datetime
		}
		itemsBBox = stac.UnionBBox(itemsBBox, item.BBox)
	}

	if start.IsZero() {
		start = constants.TemporalFloor
	}
	if end.IsZero() {
		end = constants.TemporalFloor
	}
	if itemsBBox == nil {
		itemsBBox = stac.WorldBBox
	}

	collection := stac.NewCollection(
		colID,
		collectionTitle(country.Name),
		"STAC Collection for "+country.Name+" datasets",
		constants.DefaultLicense,
		stac.NewExtent(itemsBBox, start, end),
	)

	return &CollectionNode{Collection: collection, Items: items}
}

// collectionTitle renders a country directory name as a display title.
func collectionTitle(name string) string {
	display := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(display) + " Datasets"
}

// Validate checks every document in the tree against STAC structural
// requirements and the parent-scope id uniqueness invariant.
func (t *Tree) Validate() error {
	if err := t.Catalog.Validate(); err != nil {
		return errors.WrapResource("validate", "catalog", t.Catalog.ID, err)
	}

	seenCollections := make(map[string]bool, len(t.Collections))
	for _, node := range t.Collections {
		id := node.Collection.ID
		if seenCollections[id] {
			return errors.NewValidationError("collection", id, "duplicate collection id")
		}
		seenCollections[id] = true

		if err := node.Collection.Validate(); err != nil {
			return errors.WrapResource("validate", "collection", id, err)
		}

		seenItems := make(map[string]bool, len(node.Items))
		for _, item := range node.Items {
			if seenItems[item.ID] {
				return errors.NewValidationError("item", item.ID, "duplicate item id")
			}
			seenItems[item.ID] = true

			if err := item.Validate(); err != nil {
				return errors.WrapResource("validate", "item", item.ID, err)
			}
		}
	}
	return nil
}
