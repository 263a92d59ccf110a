package epubmeta

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/yuanying/epubmeta/internal/epub"
)

// Book is an open EPUB archive.
type Book struct {
	reader *epub.Reader
	opts   epub.ParseOptions
}

// Open opens the EPUB file at path on the OS filesystem.
func Open(path string, opts ...Option) (*Book, error) {
	return OpenFs(afero.NewOsFs(), path, opts...)
}

// OpenFs opens the EPUB file at path on fs.
func OpenFs(fs afero.Fs, path string, opts ...Option) (*Book, error) {
	r, err := epub.OpenReader(fs, path)
	if err != nil {
		return nil, err
	}

	b := &Book{reader: r}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b, nil
}

// Close releases the archive file.
func (b *Book) Close() error {
	return b.reader.Close()
}

// Files returns the archive entry names in central directory order.
func (b *Book) Files() []string {
	return b.reader.Names()
}

// Resource returns the bytes of the archive entry named path. The name is
// matched exactly; fragments are not stripped.
func (b *Book) Resource(path string) ([]byte, error) {
	return b.reader.ReadBytes(path)
}

// Meta reads the container, the first package document it lists and that
// document's table of contents. The EPUB 3 nav document is used whenever the
// manifest declares one; the NCX is the fallback.
func (b *Book) Meta() (*BookMeta, error) {
	pkg, base, err := b.packageDocument()
	if err != nil {
		return nil, err
	}

	toc, err := b.toc(pkg, base)
	if err != nil {
		return nil, err
	}

	return &BookMeta{
		Title:    pkg.Title,
		Manifest: pkg.Manifest,
		Spine:    pkg.Spine,
		Toc:      *toc,
	}, nil
}

// Cover returns the cover image declared by the package document, either
// through properties="cover-image" or an EPUB 2 <meta name="cover">.
func (b *Book) Cover() (*Cover, error) {
	pkg, _, err := b.packageDocument()
	if err != nil {
		return nil, err
	}

	info := pkg.DetectCover()
	if info == nil {
		return nil, ErrNoCover
	}

	data, err := b.reader.ReadBytes(info.Path)
	if err != nil {
		return nil, errors.WithMessage(err, "cover")
	}
	return &Cover{Path: info.Path, MediaType: info.MediaType, Data: data}, nil
}

// packageDocument parses the first root file of the container and returns
// it with its base path.
func (b *Book) packageDocument() (*epub.PackageDocument, string, error) {
	doc, err := b.reader.ReadText(epub.ContainerPath)
	if err != nil {
		return nil, "", err
	}
	container, err := epub.ParseContainer(doc)
	if err != nil {
		return nil, "", err
	}
	if len(container.RootFiles) == 0 {
		return nil, "", ErrNoRootFile
	}
	root := container.RootFiles[0]

	doc, err = b.reader.ReadText(root.FullPath)
	if err != nil {
		return nil, "", err
	}
	pkg, err := epub.ParsePackageDocument(doc, root.BasePath, b.opts)
	if err != nil {
		return nil, "", errors.WithMessagef(err, "%s", root.FullPath)
	}
	return pkg, root.BasePath, nil
}

func (b *Book) toc(pkg *epub.PackageDocument, base string) (*Toc, error) {
	var (
		path  string
		parse func(doc string) (*Toc, error)
	)
	switch {
	case pkg.TocNavDocPath != nil:
		path = *pkg.TocNavDocPath
		parse = func(doc string) (*Toc, error) {
			return epub.ParseNavDoc(doc, base)
		}
	case pkg.TocNCXPath != nil:
		path = *pkg.TocNCXPath
		parse = func(doc string) (*Toc, error) {
			return epub.ParseNCX(doc, base, b.opts)
		}
	default:
		return nil, ErrNoToc
	}

	doc, err := b.reader.ReadText(path)
	if err != nil {
		return nil, err
	}
	toc, err := parse(doc)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", path)
	}
	return toc, nil
}
