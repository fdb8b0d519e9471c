package texture

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// Registry owns uploaded textures, handles are issued from 1 upward
type Registry struct {
	textures map[Handle]*Texture
	next     Handle
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		textures: make(map[Handle]*Texture),
		next:     NoTexture + 1,
	}
}

// Upload stores the pixel buffer as a 2D texture, generates its mipmap chain and returns its handle
func (r *Registry) Upload(img Image) (Handle, error) {
	base, err := toRGBA(img)
	if err != nil {
		return NoTexture, err
	}

	h := r.next
	r.next++
	r.textures[h] = &Texture{Levels: buildMipmaps(base)}
	return h, nil
}

// Get returns the texture for a handle, false for NoTexture or unknown handles
func (r *Registry) Get(h Handle) (*Texture, bool) {
	t, ok := r.textures[h]
	return t, ok
}

// Len returns the number of uploaded textures
func (r *Registry) Len() int {
	return len(r.textures)
}

// toRGBA expands an RGB or RGBA buffer into an image.RGBA
func toRGBA(img Image) (*image.RGBA, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("upload %dx%d: %w", img.Width, img.Height, ErrEmptyImage)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return nil, fmt.Errorf("upload: %d channels: %w", img.Channels, ErrUnsupportedFormat)
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return nil, fmt.Errorf("upload: buffer has %d bytes, want %d: %w", len(img.Pix), want, ErrShortBuffer)
	}

	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i < len(img.Pix); i, j = i+img.Channels, j+4 {
		out.Pix[j] = img.Pix[i]
		out.Pix[j+1] = img.Pix[i+1]
		out.Pix[j+2] = img.Pix[i+2]
		if img.Channels == 4 {
			out.Pix[j+3] = img.Pix[i+3]
		} else {
			out.Pix[j+3] = 0xff
		}
	}
	return out, nil
}

// buildMipmaps halves each dimension until both reach 1
func buildMipmaps(base *image.RGBA) []*image.RGBA {
	levels := []*image.RGBA{base}
	w, h := base.Bounds().Dx(), base.Bounds().Dy()
	prev := base
	for w > 1 || h > 1 {
		w = max(1, w/2)
		h = max(1, h/2)
		next := transform.Resize(prev, w, h, transform.Linear)
		levels = append(levels, next)
		prev = next
	}
	return levels
}
