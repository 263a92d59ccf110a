// Package thumbnail downscales raster cover images.
package thumbnail

import (
	"bytes"
	"image"
	"image/gif"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const (
	defaultJPEGQuality = 90
	defaultMaxPixels   = 100 * 1000 * 1000 // 100 megapixels
)

var (
	// ErrUnsupported is returned for data no registered decoder accepts,
	// SVG covers included.
	ErrUnsupported = errors.New("thumbnail: unsupported image format")
	ErrTooLarge    = errors.New("thumbnail: image too large to decode")
)

// Scaler shrinks images wider than MaxWidth, keeping the aspect ratio and
// the source format.
type Scaler struct {
	MaxWidth    int
	JPEGQuality int
	MaxPixels   int // Total pixel count limit for decode (width * height)
}

// Image is the result of Scale. Resized is false when Data is the input
// returned as is.
type Image struct {
	Data    []byte
	Width   int
	Height  int
	Format  string // "jpeg", "png", "gif", "bmp" or "tiff"
	Resized bool
}

// New returns a Scaler with default quality and pixel limits. A maxWidth of
// zero or less disables resizing.
func New(maxWidth int) *Scaler {
	return &Scaler{
		MaxWidth:    maxWidth,
		JPEGQuality: defaultJPEGQuality,
		MaxPixels:   defaultMaxPixels,
	}
}

// MediaType returns the MIME type of the image format.
func (i Image) MediaType() string {
	return "image/" + i.Format
}

// Scale decodes input and resizes it to MaxWidth when it is wider.
// Animated GIFs are returned unchanged.
func (s *Scaler) Scale(input []byte) (Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(input))
	if err != nil {
		return Image{}, errors.WithMessage(ErrUnsupported, err.Error())
	}

	out := Image{
		Data:   input,
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}

	pixels := uint64(cfg.Width) * uint64(cfg.Height)
	if s.MaxPixels > 0 && pixels > uint64(s.MaxPixels) {
		return out, errors.WithMessagef(ErrTooLarge, "%dx%d (%d pixels)", cfg.Width, cfg.Height, pixels)
	}

	if s.MaxWidth <= 0 || cfg.Width <= s.MaxWidth {
		return out, nil
	}

	if format == "gif" {
		animated, err := isAnimatedGIF(input)
		if err == nil && animated {
			return out, nil
		}
	}

	encodeFormat, err := imaging.FormatFromExtension(format)
	if err != nil {
		return out, errors.WithMessage(ErrUnsupported, format)
	}

	src, err := imaging.Decode(bytes.NewReader(input), imaging.AutoOrientation(true))
	if err != nil {
		return out, errors.Wrap(err, "decode image")
	}
	dst := imaging.Resize(src, s.MaxWidth, 0, imaging.Lanczos)

	quality := s.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, encodeFormat, imaging.JPEGQuality(quality)); err != nil {
		return out, errors.Wrapf(err, "%s encode failed", format)
	}

	out.Data = buf.Bytes()
	out.Width = dst.Bounds().Dx()
	out.Height = dst.Bounds().Dy()
	out.Resized = true
	return out, nil
}

func isAnimatedGIF(data []byte) (bool, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return false, err
	}
	return len(g.Image) > 1, nil
}
