package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sentinel errors
var (
	ErrEmptyImage        = errors.New("empty image")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrShortBuffer       = errors.New("pixel buffer size mismatch")
)

// supportedExt lists sniffed extensions with a registered decoder
var supportedExt = map[string]bool{
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"webp": true,
	"bmp":  true,
	"tif":  true,
}

// Decode reads an image file and returns its pixel buffer
// The format is detected from content, not from the file extension
func Decode(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory image file
func DecodeBytes(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return Image{}, fmt.Errorf("sniff: %w", err)
	}
	if !supportedExt[kind.Extension] {
		return Image{}, fmt.Errorf("sniffed %q: %w", kind.Extension, ErrUnsupportedFormat)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", kind.Extension, err)
	}
	return FromImage(img), nil
}

// FromImage flattens an image.Image into an RGB buffer, or RGBA when it has transparency
func FromImage(img image.Image) Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}

	pix := make([]byte, 0, w*h*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			// Un-premultiply for straight alpha storage
			if a != 0 && a != 0xffff {
				r = r * 0xffff / a
				g = g * 0xffff / a
				bl = bl * 0xffff / a
			}
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			if channels == 4 {
				pix = append(pix, uint8(a>>8))
			}
		}
	}

	return Image{Pix: pix, Width: w, Height: h, Channels: channels}
}
