// Package assets embeds the default catalog and its image pairs.
package assets

import (
	"embed"
	"io/fs"

	"ColoringBoard/internal/gallery"
)

// CatalogFile is the name of the default catalog inside FS.
const CatalogFile = "catalog.json"

// FS contains catalog.json and the images it references.
//
//go:embed catalog.json images
var FS embed.FS

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (*gallery.Catalog, error) {
	return gallery.LoadCatalog(FS, CatalogFile)
}

// Images exposes FS for the loader.
func Images() fs.FS { return FS }
