package epubmeta

import "github.com/yuanying/epubmeta/internal/epub"

// Option configures how a Book parses its documents.
type Option func(*epub.ParseOptions)

// WithStrictNCXLookup resolves the spine's toc attribute as a manifest id
// whatever its value. By default only toc="ncx" locates the NCX.
func WithStrictNCXLookup() Option {
	return func(o *epub.ParseOptions) {
		o.StrictNCXLookup = true
	}
}

// WithNormalizedNCXTitles collapses whitespace in NCX labels the same way nav
// document titles are. By default NCX labels are returned verbatim.
func WithNormalizedNCXTitles() Option {
	return func(o *epub.ParseOptions) {
		o.NormalizeNCXTitles = true
	}
}
