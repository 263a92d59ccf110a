package epub

// CoverInfo locates the cover image of a publication.
type CoverInfo struct {
	Path      string
	MediaType string // "" when the manifest declares none
	// DetectionMethod is "properties" or "meta".
	DetectionMethod string
}

// DetectCover finds the cover image. Methods are tried in priority order:
//  1. manifest item with properties="cover-image" (EPUB 3)
//  2. <meta name="cover"> naming a manifest id (EPUB 2)
//
// Returns nil if neither is present.
func (p *PackageDocument) DetectCover() *CoverInfo {
	if p.CoverImagePath != nil {
		return p.coverInfo(*p.CoverImagePath, "properties")
	}

	if p.CoverID != "" {
		if path, ok := p.ManifestByID[p.CoverID]; ok {
			return p.coverInfo(path, "meta")
		}
	}

	return nil
}

func (p *PackageDocument) coverInfo(path, method string) *CoverInfo {
	info := &CoverInfo{Path: path, DetectionMethod: method}
	if mt := p.Manifest[path]; mt != nil {
		info.MediaType = *mt
	}
	return info
}
