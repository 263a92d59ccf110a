package epubmeta

import "github.com/yuanying/epubmeta/internal/epub"

// Errors returned by Open, Book.Meta, Book.Resource and Book.Cover. They are
// wrapped with context; compare with errors.Is.
var (
	ErrFileOpen            = epub.ErrFileOpen
	ErrArchiveCorrupt      = epub.ErrArchiveCorrupt
	ErrEntryNotFound       = epub.ErrEntryNotFound
	ErrEntryDecodingFailed = epub.ErrEntryDecodingFailed
	ErrMalformedXML        = epub.ErrMalformedXML

	ErrNoRootFile = epub.ErrNoRootFile
	// ErrMissingPackageSection matches a *MissingSectionError naming the
	// absent metadata, manifest or spine element.
	ErrMissingPackageSection = epub.ErrMissingPackageSection
	ErrNoToc                 = epub.ErrNoToc

	ErrNavNotFound       = epub.ErrNavNotFound
	ErrTopLevelOlMissing = epub.ErrTopLevelOlMissing
	ErrNavMapNotFound    = epub.ErrNavMapNotFound

	ErrNoCover = epub.ErrNoCover
)

// MissingSectionError reports which package document section is absent.
type MissingSectionError = epub.MissingSectionError
