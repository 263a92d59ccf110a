// Package epubmeta reads metadata and resources from EPUB 2 and EPUB 3
// publications.
//
// A Book wraps the zip archive. Meta walks META-INF/container.xml, the OPF
// package document and the advertised table of contents (the EPUB 3 nav
// document when present, the EPUB 2 NCX otherwise) and returns a BookMeta:
//
//	book, err := epubmeta.Open("jane-eyre.epub")
//	if err != nil {
//		return err
//	}
//	defer book.Close()
//
//	meta, err := book.Meta()
//	if err != nil {
//		return err
//	}
//	for _, path := range meta.Spine {
//		page, err := book.Resource(path)
//		...
//	}
//
// Manifest keys, spine entries and table of contents hrefs are built by
// prefixing the directory of the OPF, joined with a single slash. When the OPF
// sits in a subdirectory, manifest keys and spine entries are archive entry
// names and can be passed to Resource as they are; table of contents hrefs
// may carry a "#fragment" that has to be cut first. When the OPF sits at the
// archive root the prefix is empty and every path starts with "/", so it
// normally matches no entry name.
//
// A Book is not safe for concurrent use.
package epubmeta
