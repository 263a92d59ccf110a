package epub

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuanying/epubmeta/internal/xmldom"
)

// NamespaceDC is the Dublin Core elements namespace used in OPF metadata.
const NamespaceDC = "http://purl.org/dc/elements/1.1/"

// asciiSpace is the set trimmed from metadata values.
const asciiSpace = " \t\n\f\r"

// ParsePackageDocument parses an OPF document. basePath is the directory of
// the OPF inside the archive and prefixes every href found in it.
func ParsePackageDocument(doc, basePath string, opts ParseOptions) (*PackageDocument, error) {
	d, err := xmldom.Parse(doc)
	if err != nil {
		return nil, malformed("package document", err)
	}
	pkg := xmldom.Root(d)

	metadata, err := section(pkg, "metadata")
	if err != nil {
		return nil, err
	}
	manifest, err := section(pkg, "manifest")
	if err != nil {
		return nil, err
	}
	spine, err := section(pkg, "spine")
	if err != nil {
		return nil, err
	}

	p := &PackageDocument{
		Title:        dcText(metadata, "title"),
		Language:     dcText(metadata, "language"),
		CoverID:      coverMeta(metadata),
		Spine:        []string{},
		Manifest:     make(map[string]*string),
		ManifestByID: make(map[string]string),
	}
	parseManifest(manifest, basePath, p)

	ncxID := parseSpine(spine, p, opts)
	if ncxID != "" {
		if path, ok := p.ManifestByID[ncxID]; ok {
			p.TocNCXPath = &path
		}
	}
	return p, nil
}

// section returns the first direct child of the package element with the
// given local name.
func section(pkg *goquery.Selection, name string) (*goquery.Selection, error) {
	s := xmldom.Child(pkg, xmldom.Local(name))
	if s.Length() == 0 {
		return nil, &MissingSectionError{Section: name}
	}
	return s, nil
}

// dcText returns the trimmed direct text of the first dc:<name> child. Later
// elements with the same name (subtitles, alternates) are ignored.
func dcText(metadata *goquery.Selection, name string) string {
	el := xmldom.Child(metadata, xmldom.Qualified(NamespaceDC, name))
	return strings.Trim(xmldom.DirectText(el), asciiSpace)
}

// coverMeta returns the manifest id named by <meta name="cover" content="...">.
func coverMeta(metadata *goquery.Selection) string {
	var id string
	xmldom.Children(metadata, xmldom.Local("meta")).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !xmldom.AttrIs(s, "name", "cover") {
			return true
		}
		id, _ = s.Attr("content")
		return false
	})
	return id
}

func parseManifest(manifest *goquery.Selection, basePath string, p *PackageDocument) {
	xmldom.Children(manifest, xmldom.Local("item")).Each(func(_ int, item *goquery.Selection) {
		href, hasHref := item.Attr("href")

		// properties is compared as a whole, not split into tokens.
		if hasHref {
			switch props, _ := item.Attr("properties"); props {
			case "cover-image":
				path := Join(basePath, href)
				p.CoverImagePath = &path
			case "nav":
				path := Join(basePath, href)
				p.TocNavDocPath = &path
			}
		}

		id, hasID := item.Attr("id")
		if !hasID || !hasHref {
			return
		}
		path := Join(basePath, href)
		p.ManifestByID[id] = path

		var mediaType *string
		if mt, ok := item.Attr("media-type"); ok {
			mediaType = &mt
		}
		p.Manifest[path] = mediaType
	})
}

// parseSpine appends resolvable itemrefs to p.Spine and returns the manifest
// id of the NCX, or "" when the spine does not name one.
func parseSpine(spine *goquery.Selection, p *PackageDocument, opts ParseOptions) string {
	xmldom.Children(spine, xmldom.Local("itemref")).Each(func(_ int, ref *goquery.Selection) {
		idref, ok := ref.Attr("idref")
		if !ok {
			return
		}
		if path, ok := p.ManifestByID[idref]; ok {
			p.Spine = append(p.Spine, path)
		}
	})

	toc, _ := spine.Attr("toc")
	switch {
	case opts.StrictNCXLookup:
		return toc
	case toc == "ncx":
		return toc
	default:
		return ""
	}
}
