// Package catalog holds the fixed table of celestial bodies drawn by the orrery.
package catalog

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/texture"
)

// Body indices
const (
	Sun = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// Ring describes a flat ring system around a body, radii in body-local units
type Ring struct {
	Inner       float64
	Outer       float64
	TexturePath string
	Texture     texture.Handle
	Tint        colorful.Color
}

// Body is one catalog row
type Body struct {
	Index       int
	Name        string
	OrbitRadius float64 // Distance from the origin, 0 for the star
	Radius      float64 // Rendered sphere radius
	OrbitSpeed  float64 // Multiplier on the global rotation angle, 0 for the star
	TexturePath string
	Texture     texture.Handle
	Tint        colorful.Color // Fallback when Texture is NoTexture
	Ring        *Ring
}

// IsStar reports whether the body is the central star
func (b *Body) IsStar() bool {
	return b.Index == Sun
}

// Catalog is the fixed-size body table indexed 0..8
type Catalog [constants.BodyCount]Body

// Default returns the constant body table with unresolved textures
func Default() Catalog {
	return Catalog{
		{Index: Sun, Name: "Sun", OrbitRadius: 0, Radius: 2.0, OrbitSpeed: 0, TexturePath: "sun.jpg", Tint: mustHex("#fdb813")},
		{Index: Mercury, Name: "Mercury", OrbitRadius: 5.0, Radius: 0.2, OrbitSpeed: 4.0, TexturePath: "mercury.jpg", Tint: mustHex("#b5b5b5")},
		{Index: Venus, Name: "Venus", OrbitRadius: 8.0, Radius: 0.4, OrbitSpeed: 3.0, TexturePath: "venus.jpg", Tint: mustHex("#e6c27a")},
		{Index: Earth, Name: "Earth", OrbitRadius: 11.0, Radius: 0.45, OrbitSpeed: 2.0, TexturePath: "earth.jpg", Tint: mustHex("#2f6fd0")},
		{Index: Mars, Name: "Mars", OrbitRadius: 14.0, Radius: 0.3, OrbitSpeed: 1.5, TexturePath: "mars.jpg", Tint: mustHex("#c1440e")},
		{Index: Jupiter, Name: "Jupiter", OrbitRadius: 20.0, Radius: 1.0, OrbitSpeed: 1.0, TexturePath: "jupiter.jpg", Tint: mustHex("#d8ca9d")},
		{
			Index: Saturn, Name: "Saturn", OrbitRadius: 28.0, Radius: 0.85, OrbitSpeed: 0.8, TexturePath: "saturn.jpg", Tint: mustHex("#e3d9a6"),
			Ring: &Ring{Inner: 1.1, Outer: 1.9, TexturePath: "saturn-ring-2.jpg", Tint: mustHex("#c9b98f")},
		},
		{Index: Uranus, Name: "Uranus", OrbitRadius: 35.0, Radius: 0.5, OrbitSpeed: 0.6, TexturePath: "uranus.jpg", Tint: mustHex("#9fe3e6")},
		{Index: Neptune, Name: "Neptune", OrbitRadius: 40.0, Radius: 0.5, OrbitSpeed: 0.5, TexturePath: "neptune.jpg", Tint: mustHex("#3e66f9")},
	}
}

// Resolve returns a copy with every texture handle produced by load
// Called once at startup; the result is treated as immutable
func (c Catalog) Resolve(load func(path string) texture.Handle) Catalog {
	out := c
	for i := range out {
		out[i].Texture = load(out[i].TexturePath)
		if r := out[i].Ring; r != nil {
			ring := *r
			ring.Texture = load(ring.TexturePath)
			out[i].Ring = &ring
		}
	}
	return out
}

// Valid reports whether idx addresses a catalog row
func (c *Catalog) Valid(idx int) bool {
	return idx >= 0 && idx < len(c)
}

// Lookup finds a body by case-insensitive name
func (c *Catalog) Lookup(name string) (*Body, bool) {
	for i := range c {
		if strings.EqualFold(c[i].Name, name) {
			return &c[i], true
		}
	}
	return nil, false
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
