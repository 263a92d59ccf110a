package xmldom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Name is a goquery.Matcher selecting elements by local name and, when Space
// is non-empty, by namespace URI. It is used instead of CSS selectors because
// cascadia folds type selectors to lower case (navMap, navPoint).
type Name struct {
	Space string
	Local string
}

// Local matches elements with the given local name in any namespace.
func Local(local string) Name {
	return Name{Local: local}
}

// Qualified matches elements with the given namespace URI and local name.
func Qualified(space, local string) Name {
	return Name{Space: space, Local: local}
}

var _ goquery.Matcher = Name{}

// Match reports whether n is an element with this name.
func (m Name) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.Data != m.Local {
		return false
	}
	return m.Space == "" || n.Namespace == m.Space
}

// MatchAll returns n and its descendants that match, in document order.
func (m Name) MatchAll(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if m.Match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Filter returns the nodes that match, preserving order.
func (m Name) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// Child returns the first direct child of sel matching m. The result is empty
// when there is none.
func Child(sel *goquery.Selection, m goquery.Matcher) *goquery.Selection {
	return sel.ChildrenMatcher(m).First()
}

// Children returns every direct child of sel matching m, in document order.
func Children(sel *goquery.Selection, m goquery.Matcher) *goquery.Selection {
	return sel.ChildrenMatcher(m)
}

// Descendant returns the first descendant of sel matching m that also
// satisfies keep. A nil keep accepts every match.
func Descendant(sel *goquery.Selection, m goquery.Matcher, keep func(*goquery.Selection) bool) *goquery.Selection {
	found := sel.FindMatcher(m)
	if keep == nil {
		return found.First()
	}
	return found.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return keep(s)
	}).First()
}

// AttrIs reports whether the first node of sel has attribute key equal to val.
func AttrIs(sel *goquery.Selection, key, val string) bool {
	v, ok := sel.Attr(key)
	return ok && v == val
}
