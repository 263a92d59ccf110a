package epub

// Container is the parsed META-INF/container.xml.
type Container struct {
	RootFiles []RootFile
}

// RootFile names one package document inside the archive.
type RootFile struct {
	FullPath string // e.g. "OEBPS/content.opf"
	BasePath string // FullPath without its last segment; "" at archive root
}

// PackageDocument is the subset of the OPF the pipeline needs. Paths are
// archive paths built by Join from the root file's base path.
type PackageDocument struct {
	Title    string
	Language string

	// CoverImagePath is set by a manifest item with properties="cover-image".
	CoverImagePath *string
	// CoverID is the content of an EPUB 2 <meta name="cover"> element.
	CoverID string

	Spine []string
	// Manifest maps an archive path to its declared media type, nil when
	// the item has none.
	Manifest     map[string]*string
	ManifestByID map[string]string

	TocNCXPath    *string
	TocNavDocPath *string
}

// Toc is a table of contents tree.
type Toc struct {
	Contents []TocNode `json:"contents"`
}

// TocNode is one entry of a table of contents. Children is nil for a leaf
// and never an empty non-nil slice.
type TocNode struct {
	Title    string    `json:"title"`
	Href     *string   `json:"href"`
	Children []TocNode `json:"children"`
}

// ParseOptions loosens parser behaviour where the EPUB specifications and the
// defaults disagree.
type ParseOptions struct {
	// StrictNCXLookup resolves <spine toc="..."> as a manifest id for any
	// value. By default only the literal "ncx" is honoured.
	StrictNCXLookup bool
	// NormalizeNCXTitles applies NormalizeSpace to NCX labels, as is always
	// done for nav document titles.
	NormalizeNCXTitles bool
}

// Join builds an archive path from an OPF base path and a relative href.
// The two are joined with a single slash even when base is empty, so
// documents at the archive root produce paths starting with "/".
func Join(base, href string) string {
	return base + "/" + href
}
