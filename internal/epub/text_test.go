package epub

import (
	"testing"

	"github.com/yuanying/epubmeta/internal/xmldom"
)

func TestTextNorm(t *testing.T) {
	doc, err := xmldom.Parse("<div><span> <span>a </span>:  b</span>c</div>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := TextNorm(doc.Selection); got != "a : bc" {
		t.Errorf("TextNorm() = %q, want %q", got, "a : bc")
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: "plain", want: "plain"},
		{in: "  Chapter\n\t 4 ", want: "Chapter 4"},
		{in: "a\u00a0 b", want: "a b"},
		{in: "line\r\nbreak", want: "line break"},
		{in: "x\vy", want: "x y"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeSpace(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeSpace(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeSpace(got); again != got {
				t.Errorf("NormalizeSpace is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
