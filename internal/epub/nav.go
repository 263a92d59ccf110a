package epub

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/yuanying/epubmeta/internal/xmldom"
)

// ParseNavDoc builds a Toc from an EPUB 3 XHTML navigation document. Only
// the <nav id="toc"> element is read; landmarks and page lists are ignored.
func ParseNavDoc(doc, basePath string) (*Toc, error) {
	d, err := xmldom.Parse(doc)
	if err != nil {
		return nil, malformed("navigation document", err)
	}

	nav := xmldom.Descendant(d.Selection, xmldom.Local("nav"), func(s *goquery.Selection) bool {
		return xmldom.AttrIs(s, "id", "toc")
	})
	if nav.Length() == 0 {
		return nil, ErrNavNotFound
	}

	ol := xmldom.Child(nav, xmldom.Local("ol"))
	if ol.Length() == 0 {
		return nil, ErrTopLevelOlMissing
	}

	contents := parseNavList(ol, basePath)
	if contents == nil {
		contents = []TocNode{}
	}
	return &Toc{Contents: contents}, nil
}

// parseNavList parses the direct <li> children of ol. It returns nil when
// there are none.
func parseNavList(ol *goquery.Selection, basePath string) []TocNode {
	var nodes []TocNode
	xmldom.Children(ol, xmldom.Local("li")).Each(func(_ int, li *goquery.Selection) {
		nodes = append(nodes, parseNavItem(li, basePath))
	})
	return nodes
}

func parseNavItem(li *goquery.Selection, basePath string) TocNode {
	var node TocNode

	if a := xmldom.Child(li, xmldom.Local("a")); a.Length() > 0 {
		node.Title = TextNorm(a)
		if href, ok := a.Attr("href"); ok {
			path := Join(basePath, href)
			node.Href = &path
		}
	} else if span := xmldom.Child(li, xmldom.Local("span")); span.Length() > 0 {
		node.Title = TextNorm(span)
	}

	if ol := xmldom.Child(li, xmldom.Local("ol")); ol.Length() > 0 {
		node.Children = parseNavList(ol, basePath)
	}
	return node
}
