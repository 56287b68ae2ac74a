// Package write serializes a built catalog tree to disk as a self-contained
// STAC layout: relative links only, so the output directory can be moved or
// served from any root without rewriting.
//
// Layout:
//
//	catalog.json
//	<collection-id>/collection.json
//	<collection-id>/<item-id>/<item-id>.json
package write

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/trendsearth/stacgen/internal/build"
	"github.com/trendsearth/stacgen/pkg/constants"
	"github.com/trendsearth/stacgen/pkg/errors"
	"github.com/trendsearth/stacgen/pkg/logging"
	"github.com/trendsearth/stacgen/pkg/stac"
)

// CollectionPath returns the catalog-relative path of a collection document.
func CollectionPath(collectionID string) string {
	return path.Join(collectionID, constants.CollectionFileName)
}

// ItemPath returns the catalog-relative path of an item document.
func ItemPath(collectionID, itemID string) string {
	return path.Join(collectionID, itemID, itemID+".json")
}

// Writer persists catalog trees under OutputDir. DataDir is needed to
// rewrite asset hrefs relative to each item document.
type Writer struct {
	OutputDir string
	DataDir   string
}

// New creates a writer for the given output and data directories.
func New(outputDir, dataDir string) *Writer {
	return &Writer{OutputDir: outputDir, DataDir: dataDir}
}

// Write replaces the output directory with the serialized tree. The input
// tree is not modified; links and normalized asset hrefs exist only in the
// written documents.
func (w *Writer) Write(ctx context.Context, tree *build.Tree) error {
	log := logging.Ctx(ctx)

	if err := os.RemoveAll(w.OutputDir); err != nil {
		return errors.WrapIO("delete", w.OutputDir, err)
	}
	if err := os.MkdirAll(w.OutputDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", w.OutputDir, err)
	}

	if err := w.writeCatalog(tree); err != nil {
		return err
	}

	for _, node := range tree.Collections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeCollection(node); err != nil {
			return err
		}
		for _, item := range node.Items {
			if err := w.writeItem(node.Collection.ID, item); err != nil {
				return err
			}
		}
	}

	log.Info().
		Str("output", w.OutputDir).
		Int("collections", len(tree.Collections)).
		Msg("Catalog written")
	return nil
}

// writeCatalog renders the root document with its child links.
func (w *Writer) writeCatalog(tree *build.Tree) error {
	cat := *tree.Catalog
	cat.Links = []stac.Link{
		{Rel: stac.RelRoot, Href: "./" + constants.CatalogFileName, Type: stac.MediaTypeJSON},
	}
	for _, node := range tree.Collections {
		cat.AddChild("./"+CollectionPath(node.Collection.ID), node.Collection.Title)
	}
	return w.writeFile(constants.CatalogFileName, &cat)
}

// writeCollection renders a collection document with root, parent, and item
// links.
func (w *Writer) writeCollection(node *build.CollectionNode) error {
	col := *node.Collection
	col.Links = []stac.Link{
		{Rel: stac.RelRoot, Href: "../" + constants.CatalogFileName, Type: stac.MediaTypeJSON},
		{Rel: stac.RelParent, Href: "../" + constants.CatalogFileName, Type: stac.MediaTypeJSON},
	}
	for _, item := range node.Items {
		col.AddItem("./"+path.Join(item.ID, item.ID+".json"), item.ID)
	}
	return w.writeFile(CollectionPath(col.ID), &col)
}

// writeItem renders an item document with its hierarchy links and asset
// hrefs rewritten relative to the document location.
func (w *Writer) writeItem(collectionID string, item *stac.Item) error {
	// The collection field on the item requires a matching collection link.
	rendered := *item
	rendered.Links = []stac.Link{
		{Rel: stac.RelRoot, Href: "../../" + constants.CatalogFileName, Type: stac.MediaTypeJSON},
		{Rel: stac.RelParent, Href: "../" + constants.CollectionFileName, Type: stac.MediaTypeJSON},
		{Rel: stac.RelCollection, Href: "../" + constants.CollectionFileName, Type: stac.MediaTypeJSON},
	}

	itemDir := filepath.Join(w.OutputDir, collectionID, item.ID)
	assets := make(map[string]stac.Asset, len(rendered.Assets))
	for _, key := range item.AssetKeys() {
		asset := item.Assets[key]
		href, err := w.assetHref(itemDir, asset.Href)
		if err != nil {
			return errors.WrapResource("write", "asset", key, err)
		}
		asset.Href = href
		assets[key] = asset
	}
	rendered.Assets = assets

	return w.writeFile(ItemPath(collectionID, item.ID), &rendered)
}

// assetHref rewrites a data-dir-relative path as a link relative to the item
// document's directory.
func (w *Writer) assetHref(itemDir, dataRel string) (string, error) {
	absItemDir, err := filepath.Abs(itemDir)
	if err != nil {
		return "", err
	}
	absData, err := filepath.Abs(filepath.Join(w.DataDir, filepath.FromSlash(dataRel)))
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absItemDir, absData)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// writeFile validates, encodes, and writes one document.
func (w *Writer) writeFile(relPath string, doc interface{ Validate() error }) error {
	if err := doc.Validate(); err != nil {
		return errors.WrapResource("write", "document", relPath, err)
	}

	data, err := stac.Encode(doc)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.OutputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", fullPath, err)
	}
	return nil
}
