package epub

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Reader provides name-indexed access to the entries of an EPUB archive.
// It is not safe for concurrent use.
type Reader struct {
	file      io.Closer
	zipReader *zip.Reader
	files     map[string]*zip.File
}

// OpenReader opens the archive at name on fs.
func OpenReader(fs afero.Fs, name string) (*Reader, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}

	r, err := NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, errors.WithMessagef(err, "%s", name)
	}
	r.file = f
	return r, nil
}

// NewReader reads the central directory of an archive of the given size.
// The caller keeps ownership of ra.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveCorrupt, err)
	}

	reader := &Reader{
		zipReader: zr,
		files:     make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		// First entry wins; names are kept exactly as stored.
		if _, dup := reader.files[f.Name]; !dup {
			reader.files[f.Name] = f
		}
	}
	return reader, nil
}

// Close releases the underlying file when the reader owns one.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Names returns every entry name in central directory order.
func (r *Reader) Names() []string {
	names := make([]string, 0, len(r.zipReader.File))
	for _, f := range r.zipReader.File {
		names = append(names, f.Name)
	}
	return names
}

// ReadBytes returns the body of the named entry verbatim.
func (r *Reader) ReadBytes(name string) ([]byte, error) {
	f, ok := r.files[name]
	if !ok {
		return nil, errors.WithMessagef(ErrEntryNotFound, "%q", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open entry %q", name)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "read entry %q", name)
	}
	return data, nil
}

// ReadText returns the named entry decoded as UTF-8. A leading byte order
// mark is dropped.
func (r *Reader) ReadText(name string) (string, error) {
	data, err := r.ReadBytes(name)
	if err != nil {
		return "", err
	}

	t := transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
	text, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", errors.WithMessagef(ErrEntryDecodingFailed, "%q: %v", name, err)
	}
	return string(text), nil
}
