package epub

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds surfaced by the parse pipeline. Callers test for them with
// errors.Is; the returned errors carry extra context.
var (
	ErrFileOpen            = errors.New("epub: cannot open file")
	ErrArchiveCorrupt      = errors.New("epub: corrupt zip archive")
	ErrEntryNotFound       = errors.New("epub: entry not found")
	ErrEntryDecodingFailed = errors.New("epub: entry is not valid UTF-8")
	ErrMalformedXML        = errors.New("epub: malformed XML")

	ErrNoRootFile            = errors.New("epub: no rootfile in container")
	ErrMissingPackageSection = errors.New("epub: missing package section")
	ErrNoToc                 = errors.New("epub: no table of contents")

	ErrNavNotFound       = errors.New("epub: nav element with id \"toc\" not found")
	ErrTopLevelOlMissing = errors.New("epub: top level ol not found in nav")
	ErrNavMapNotFound    = errors.New("epub: navMap not found")

	ErrNoCover = errors.New("epub: no cover image")
)

// MissingSectionError reports a package document lacking one of its
// metadata, manifest or spine children.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("epub: package document has no <%s> element", e.Section)
}

// Is makes errors.Is(err, ErrMissingPackageSection) hold.
func (e *MissingSectionError) Is(target error) bool {
	return target == ErrMissingPackageSection
}

// malformed tags an XML syntax error from the named document.
func malformed(doc string, err error) error {
	return errors.WithMessagef(ErrMalformedXML, "%s: %v", doc, err)
}
