package epub

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/yuanying/epubmeta/internal/xmldom"
)

// ParseNCX builds a Toc from an EPUB 2 NCX document.
func ParseNCX(doc, basePath string, opts ParseOptions) (*Toc, error) {
	d, err := xmldom.Parse(doc)
	if err != nil {
		return nil, malformed("NCX document", err)
	}

	navMap := xmldom.Descendant(d.Selection, xmldom.Local("navMap"), nil)
	if navMap.Length() == 0 {
		return nil, ErrNavMapNotFound
	}

	contents := parseNavPoints(navMap, basePath, opts)
	if contents == nil {
		contents = []TocNode{}
	}
	return &Toc{Contents: contents}, nil
}

// parseNavPoints parses the direct <navPoint> children of parent, returning
// nil when there are none.
func parseNavPoints(parent *goquery.Selection, basePath string, opts ParseOptions) []TocNode {
	var nodes []TocNode
	xmldom.Children(parent, xmldom.Local("navPoint")).Each(func(_ int, np *goquery.Selection) {
		nodes = append(nodes, parseNavPoint(np, basePath, opts))
	})
	return nodes
}

func parseNavPoint(np *goquery.Selection, basePath string, opts ParseOptions) TocNode {
	label := xmldom.Child(np, xmldom.Local("navLabel"))
	text := xmldom.Child(label, xmldom.Local("text"))

	node := TocNode{Title: text.Text()}
	if opts.NormalizeNCXTitles {
		node.Title = NormalizeSpace(node.Title)
	}

	content := xmldom.Child(np, xmldom.Local("content"))
	if src, ok := content.Attr("src"); ok {
		path := Join(basePath, src)
		node.Href = &path
	}

	node.Children = parseNavPoints(np, basePath, opts)
	return node
}
