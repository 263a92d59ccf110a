// Package xmldom builds goquery documents from well-formed XML.
//
// goquery's own parser is an HTML5 tree builder: it never rejects input,
// lower-cases tag names and does not understand self-closing elements or
// namespaces. EPUB package, container and NCX documents are XML, so this
// package tokenizes with encoding/xml and hands the resulting tree to goquery.
// Element and attribute names keep their case; Node.Namespace carries the
// resolved namespace URI and Node.Data the local name.
package xmldom

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Parse reads a complete XML document. Any syntax error, including a missing
// or repeated root element, text outside the root or unbalanced tags, is
// returned as is. Adjacent character data, such as text followed by a CDATA
// section, is merged into one text node.
func Parse(doc string) (*goquery.Document, error) {
	dec := xml.NewDecoder(bytes.NewBufferString(doc))
	dec.Strict = true
	// XHTML navigation documents routinely use &nbsp; and friends.
	dec.Entity = xml.HTMLEntity
	// Input has already been decoded to UTF-8 by the archive reader, so
	// whatever the declaration says is ignored.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	root := &html.Node{Type: html.DocumentNode}
	cur := root
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if cur == root && rootElement(root) != nil {
				line, _ := dec.InputPos()
				return nil, errors.Errorf("xml: second root element <%s> on line %d", t.Name.Local, line)
			}
			n := &html.Node{
				Type:      html.ElementNode,
				Data:      t.Name.Local,
				Namespace: t.Name.Space,
			}
			for _, a := range t.Attr {
				n.Attr = append(n.Attr, html.Attribute{
					Namespace: a.Name.Space,
					Key:       a.Name.Local,
					Val:       a.Value,
				})
			}
			cur.AppendChild(n)
			cur = n
		case xml.EndElement:
			cur = cur.Parent
		case xml.CharData:
			if cur == root {
				if len(bytes.TrimSpace(t)) > 0 {
					line, _ := dec.InputPos()
					return nil, errors.Errorf("xml: text outside the root element on line %d", line)
				}
				continue
			}
			if last := cur.LastChild; last != nil && last.Type == html.TextNode {
				last.Data += string(t)
				continue
			}
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
		case xml.Comment:
			cur.AppendChild(&html.Node{Type: html.CommentNode, Data: string(t)})
		}
	}

	if rootElement(root) == nil {
		return nil, errors.New("xml: document has no root element")
	}
	return goquery.NewDocumentFromNode(root), nil
}

// Root returns a selection holding the document element.
func Root(doc *goquery.Document) *goquery.Selection {
	n := rootElement(doc.Get(0))
	if n == nil {
		return doc.Selection.Slice(0, 0)
	}
	return doc.FindNodes(n)
}

func rootElement(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// DirectText returns the first child of the first node in sel if that child is
// a text node, and "" otherwise. Unlike Selection.Text it does not descend.
func DirectText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	n := sel.Get(0)
	if n.FirstChild == nil || n.FirstChild.Type != html.TextNode {
		return ""
	}
	return n.FirstChild.Data
}
