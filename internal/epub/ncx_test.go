package epub

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleNCX = `<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="test-uid-123"/>
    <meta name="dtb:depth" content="2"/>
  </head>
  <docTitle><text>Test Book</text></docTitle>
  <navMap>
    <navPoint id="ch_1" playOrder="1">
      <navLabel><text>Chapter 1</text></navLabel>
      <content src="content.html#ch_1"/>
      <navPoint id="ch_1_1" playOrder="2">
        <navLabel><text>Chapter 1.1</text></navLabel>
        <content src="content.html#ch_1_1"/>
      </navPoint>
    </navPoint>
    <navPoint id="ch_2" playOrder="3">
      <navLabel><text>Chapter 2</text></navLabel>
      <content src="content.html#ch_2"/>
    </navPoint>
  </navMap>
</ncx>`

func TestParseNCX(t *testing.T) {
	got, err := ParseNCX(sampleNCX, "epub", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseNCX() error = %v", err)
	}

	want := &Toc{Contents: []TocNode{
		{
			Title: "Chapter 1",
			Href:  ptr("epub/content.html#ch_1"),
			Children: []TocNode{
				{Title: "Chapter 1.1", Href: ptr("epub/content.html#ch_1_1")},
			},
		},
		{Title: "Chapter 2", Href: ptr("epub/content.html#ch_2")},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseNCX() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNCX_Titles(t *testing.T) {
	doc := `<ncx><navMap>
  <navPoint>
    <navLabel><text>
      Part   One
    </text></navLabel>
  </navPoint>
  <navPoint><content src="two.xhtml"/></navPoint>
</navMap></ncx>`

	tests := []struct {
		name string
		opts ParseOptions
		want []TocNode
	}{
		{
			name: "raw labels",
			want: []TocNode{
				{Title: "\n      Part   One\n    "},
				{Title: "", Href: ptr("OEBPS/two.xhtml")},
			},
		},
		{
			name: "normalized labels",
			opts: ParseOptions{NormalizeNCXTitles: true},
			want: []TocNode{
				{Title: "Part One"},
				{Title: "", Href: ptr("OEBPS/two.xhtml")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNCX(doc, "OEBPS", tt.opts)
			if err != nil {
				t.Fatalf("ParseNCX() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Contents); diff != "" {
				t.Errorf("Contents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNCX_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "no navMap", doc: `<ncx><head/></ncx>`, wantErr: ErrNavMapNotFound},
		{name: "malformed", doc: `<ncx><navMap></ncx>`, wantErr: ErrMalformedXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNCX(tt.doc, "OEBPS", ParseOptions{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseNCX() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseNCX_EmptyNavMap(t *testing.T) {
	got, err := ParseNCX(`<ncx><navMap/></ncx>`, "OEBPS", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseNCX() error = %v", err)
	}
	if got.Contents == nil || len(got.Contents) != 0 {
		t.Errorf("Contents = %#v, want empty non-nil", got.Contents)
	}
}

func TestParseNCX_ChildrenNeverEmpty(t *testing.T) {
	got, err := ParseNCX(sampleNCX, "epub", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseNCX() error = %v", err)
	}

	var walk func([]TocNode)
	walk = func(nodes []TocNode) {
		for _, n := range nodes {
			if n.Children != nil && len(n.Children) == 0 {
				t.Errorf("node %q has empty non-nil Children", n.Title)
			}
			walk(n.Children)
		}
	}
	walk(got.Contents)
}
