package epub

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const janeEyreNav = `<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="en-US">
<head>
    <title>Table of Contents</title>
</head>
<body>
<nav id="toc">
    <h2>Table of Contents</h2>
    <ol>
        <li><a href="preface.xhtml">Preface</a></li>
        <li>
            <a href="title-page.xhtml">Jane Eyre</a>
            <ol>
                <li><a href="chapter-1.xhtml">Chapter 1</a></li>
                <li><a href="chapter-2.xhtml"> Chapter 2 </a></li>
                <li><a href="chapter-3.xhtml"><span>Chapter 3 </span></a></li>
                <li><a href="chapter-4.xhtml"> <span> Chapter</span> 4</a></li>
                <li><span><span>Chapter</span> 5</span></li>
            </ol>
        </li>
    </ol>
</nav>
</body>
</html>`

func TestParseNavDoc(t *testing.T) {
	got, err := ParseNavDoc(janeEyreNav, "epub")
	if err != nil {
		t.Fatalf("ParseNavDoc() error = %v", err)
	}

	want := &Toc{Contents: []TocNode{
		{Title: "Preface", Href: ptr("epub/preface.xhtml")},
		{
			Title: "Jane Eyre",
			Href:  ptr("epub/title-page.xhtml"),
			Children: []TocNode{
				{Title: "Chapter 1", Href: ptr("epub/chapter-1.xhtml")},
				{Title: "Chapter 2", Href: ptr("epub/chapter-2.xhtml")},
				{Title: "Chapter 3", Href: ptr("epub/chapter-3.xhtml")},
				{Title: "Chapter 4", Href: ptr("epub/chapter-4.xhtml")},
				{Title: "Chapter 5"},
			},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseNavDoc() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNavDoc_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "no nav",
			doc:     `<html><body><ol><li><a href="a.xhtml">A</a></li></ol></body></html>`,
			wantErr: ErrNavNotFound,
		},
		{
			name:    "nav without toc id",
			doc:     `<html><body><nav id="landmarks"><ol/></nav></body></html>`,
			wantErr: ErrNavNotFound,
		},
		{
			name:    "ol not a direct child",
			doc:     `<html><body><nav id="toc"><div><ol/></div></nav></body></html>`,
			wantErr: ErrTopLevelOlMissing,
		},
		{
			name:    "malformed",
			doc:     `<html><body><nav id="toc"><ol><li></ol></nav></body></html>`,
			wantErr: ErrMalformedXML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNavDoc(tt.doc, "epub")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseNavDoc() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseNavDoc_PicksTocNav(t *testing.T) {
	doc := `<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<body>
  <nav epub:type="landmarks" id="landmarks"><ol><li><a href="cover.xhtml">Cover</a></li></ol></nav>
  <section><nav epub:type="toc" id="toc"><ol><li><a href="ch1.xhtml#start">One</a></li></ol></nav></section>
</body>
</html>`

	got, err := ParseNavDoc(doc, "OEBPS")
	if err != nil {
		t.Fatalf("ParseNavDoc() error = %v", err)
	}

	want := &Toc{Contents: []TocNode{{Title: "One", Href: ptr("OEBPS/ch1.xhtml#start")}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseNavDoc() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNavDoc_EdgeItems(t *testing.T) {
	doc := `<html><body><nav id="toc"><ol>
  <li><a>No href</a></li>
  <li>bare text</li>
  <li><span>Group</span><ol></ol></li>
  <li><a href="x.xhtml">Has&nbsp;entity</a><ol><p>not an item</p></ol></li>
</ol></nav></body></html>`

	got, err := ParseNavDoc(doc, "b")
	if err != nil {
		t.Fatalf("ParseNavDoc() error = %v", err)
	}

	want := &Toc{Contents: []TocNode{
		{Title: "No href"},
		{Title: ""},
		{Title: "Group"},
		{Title: "Has entity", Href: ptr("b/x.xhtml")},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseNavDoc() mismatch (-want +got):\n%s", diff)
	}
	for i, n := range got.Contents {
		if n.Children != nil {
			t.Errorf("Contents[%d].Children = %#v, want nil", i, n.Children)
		}
	}
}

func TestParseNavDoc_EmptyTopLevel(t *testing.T) {
	got, err := ParseNavDoc(`<html><body><nav id="toc"><ol/></nav></body></html>`, "b")
	if err != nil {
		t.Fatalf("ParseNavDoc() error = %v", err)
	}
	if got.Contents == nil || len(got.Contents) != 0 {
		t.Errorf("Contents = %#v, want empty non-nil", got.Contents)
	}
}
