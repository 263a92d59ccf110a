package epub

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuanying/epubmeta/internal/xmldom"
)

// ContainerPath is the fixed location of the OCF container document.
const ContainerPath = "META-INF/container.xml"

// ParseContainer extracts every <rootfile full-path="..."> in document
// order. The container namespace is not checked. An empty result is not an
// error.
func ParseContainer(doc string) (*Container, error) {
	d, err := xmldom.Parse(doc)
	if err != nil {
		return nil, malformed(ContainerPath, err)
	}

	c := &Container{}
	d.FindMatcher(xmldom.Local("rootfile")).Each(func(_ int, s *goquery.Selection) {
		fullPath, ok := s.Attr("full-path")
		if !ok {
			return
		}
		c.RootFiles = append(c.RootFiles, RootFile{
			FullPath: fullPath,
			BasePath: basePath(fullPath),
		})
	})
	return c, nil
}

// basePath drops the final segment of an archive path.
func basePath(fullPath string) string {
	p := strings.TrimRight(fullPath, "/")
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	return strings.TrimRight(p[:i], "/")
}
