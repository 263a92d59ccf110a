package epubmeta

import "github.com/yuanying/epubmeta/internal/epub"

// BookMeta is the metadata of a publication.
type BookMeta struct {
	Title string `json:"title"`
	// Manifest maps every resource path to its declared media type, nil
	// when the manifest item has none.
	Manifest map[string]*string `json:"manifest"`
	// Spine lists content document paths in reading order.
	Spine []string `json:"spine"`
	Toc   Toc      `json:"toc"`
}

// Toc is a table of contents.
type Toc = epub.Toc

// TocNode is one table of contents entry. Href is nil for entries that do
// not link anywhere; Children is nil for leaves.
type TocNode = epub.TocNode

// Cover is the cover image of a publication.
type Cover struct {
	Path      string
	MediaType string
	Data      []byte
}
