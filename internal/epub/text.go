package epub

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// spaceRun covers everything unicode.IsSpace does, not just RE2's ASCII \s.
var spaceRun = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)

// TextNorm concatenates the descendant text of sel and normalizes its
// whitespace with NormalizeSpace.
func TextNorm(sel *goquery.Selection) string {
	return NormalizeSpace(sel.Text())
}

// NormalizeSpace trims s and collapses every whitespace run to one space.
func NormalizeSpace(s string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
