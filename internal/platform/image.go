package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/zjrosen/parlor/internal/chat"
)

// ErrUnsupportedImage is returned for blobs that are not PNG, JPEG or GIF.
var ErrUnsupportedImage = errors.New("unsupported image format")

type decodedImage struct {
	blob   chat.Blob
	img    image.Image
	format string
}

func decodeImage(b chat.Blob) (*decodedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(b.Bytes()))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, b.MimeType())
		}
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return &decodedImage{blob: b, img: img, format: format}, nil
}

func (d *decodedImage) Blob() chat.Blob { return d.blob }
func (d *decodedImage) Width() int      { return d.img.Bounds().Dx() }
func (d *decodedImage) Height() int     { return d.img.Bounds().Dy() }
func (d *decodedImage) MaxDimension() int {
	return max(d.Width(), d.Height())
}

// Scale returns a copy whose longest side is maxDimension, keeping the aspect
// ratio. Images already within bounds are returned re-wrapped, unscaled.
func (d *decodedImage) Scale(ctx context.Context, maxDimension int) (chat.Image, error) {
	if maxDimension <= 0 {
		return nil, fmt.Errorf("scale: invalid dimension %d", maxDimension)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.MaxDimension() <= maxDimension {
		return &decodedImage{blob: d.blob, img: d.img, format: d.format}, nil
	}

	w, h := fitWithin(d.Width(), d.Height(), maxDimension)
	scaled := resize(d.img, w, h)
	data, err := encode(scaled, d.format)
	if err != nil {
		return nil, err
	}
	return &decodedImage{blob: NewBlob(data), img: scaled, format: d.format}, nil
}

// Dispose drops the decoded pixels.
func (d *decodedImage) Dispose() {
	d.img = image.Rect(0, 0, 0, 0)
}

func fitWithin(w, h, limit int) (int, int) {
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

func resize(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
