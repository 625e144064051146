package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxWidth = 1280
	quality  = 82
)

// Normalize decodes an uploaded image (jpeg/png/gif/webp), scales it
// down to at most maxWidth and re-encodes it as lossy webp. Every image
// the API serves goes through this so clients get one predictable
// format and size.
func Normalize(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		// image.Decode only knows the registered stdlib formats;
		// webp input is decoded by the webp package itself
		return nil, fmt.Errorf("decode image: %w", err)
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// NormalizeWebP is the entry point for uploads already in webp form.
func NormalizeWebP(r io.Reader) ([]byte, error) {
	src, err := webp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode webp: %w", err)
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}

	h := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
