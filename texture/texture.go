// Package texture decodes image files into pixel buffers and keeps them as
// mipmapped 2D textures addressed by opaque handles.
package texture

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Handle is an opaque reference to an uploaded texture
type Handle uint32

// NoTexture is the sentinel returned when a texture could not be produced
const NoTexture Handle = 0

// Image is a decoded pixel buffer, row-major, Channels bytes per pixel (3 = RGB, 4 = RGBA)
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Texture is an uploaded 2D texture with its mipmap chain, level 0 is full size
type Texture struct {
	Levels []*image.RGBA
}

// Size returns level 0 dimensions
func (t *Texture) Size() (int, int) {
	if len(t.Levels) == 0 {
		return 0, 0
	}
	b := t.Levels[0].Bounds()
	return b.Dx(), b.Dy()
}

// LevelFor picks the mip level whose texel density best matches texelsPerPixel
func (t *Texture) LevelFor(texelsPerPixel float64) float64 {
	if texelsPerPixel <= 1 {
		return 0
	}
	lod := math.Log2(texelsPerPixel)
	if maxLod := float64(len(t.Levels) - 1); lod > maxLod {
		return maxLod
	}
	return lod
}

// Sample returns the bilinear filtered color at (u, v) with repeat wrapping
// lod is rounded to the nearest level
func (t *Texture) Sample(u, v, lod float64) colorful.Color {
	if len(t.Levels) == 0 {
		return colorful.Color{}
	}
	level := int(lod + 0.5)
	if level < 0 {
		level = 0
	}
	if level >= len(t.Levels) {
		level = len(t.Levels) - 1
	}
	img := t.Levels[level]
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	u = u - math.Floor(u)
	v = v - math.Floor(v)

	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := texel(img, wrap(x0, w), wrap(y0, h))
	c10 := texel(img, wrap(x0+1, w), wrap(y0, h))
	c01 := texel(img, wrap(x0, w), wrap(y0+1, h))
	c11 := texel(img, wrap(x0+1, w), wrap(y0+1, h))

	top := c00.BlendRgb(c10, tx)
	bottom := c01.BlendRgb(c11, tx)
	return top.BlendRgb(bottom, ty)
}

func texel(img *image.RGBA, x, y int) colorful.Color {
	i := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	return colorful.Color{
		R: float64(img.Pix[i]) / 255.0,
		G: float64(img.Pix[i+1]) / 255.0,
		B: float64(img.Pix[i+2]) / 255.0,
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
