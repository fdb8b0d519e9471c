package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/texture"
)

// TextureSource resolves texture handles, satisfied by *texture.Registry
type TextureSource interface {
	Get(h texture.Handle) (*texture.Texture, bool)
}

type meshKey struct {
	kind           scene.DirectiveKind
	a, b           float64
	slices, stacks int
}

// Rasterizer draws frame directives into a canvas
// Meshes and orbit loops are tessellated once and cached by shape
type Rasterizer struct {
	Textures TextureSource

	meshes  map[meshKey]*scene.Mesh
	loops   map[meshKey][]mgl64.Vec3
	scratch []screenVertex
}

// NewRasterizer creates a rasterizer, src may be nil for untextured rendering
func NewRasterizer(src TextureSource) *Rasterizer {
	return &Rasterizer{
		Textures: src,
		meshes:   make(map[meshKey]*scene.Mesh),
		loops:    make(map[meshKey][]mgl64.Vec3),
	}
}

// screenVertex is a projected vertex with the attributes interpolated across a triangle
type screenVertex struct {
	x, y, z float64 // pixel coordinates, NDC depth
	invW    float64
	world   mgl64.Vec3
	normal  mgl64.Vec3
	u, v    float64
	ok      bool // false when behind the near plane
}

// fragment is one interpolated surface sample
type fragment struct {
	world  mgl64.Vec3
	normal mgl64.Vec3
	u, v   float64
}

type shader func(fr *fragment) RGB

// Draw renders the opaque pass (spheres, orbit lines) then the translucent pass (rings)
func (r *Rasterizer) Draw(c *Canvas, f scene.Frame, proj mgl64.Mat4) {
	if c.Width == 0 || c.Height == 0 {
		return
	}
	vp := proj.Mul4(f.View)

	for i := range f.Directives {
		d := &f.Directives[i]
		if d.Translucent() {
			continue
		}
		if d.Kind == scene.KindOrbit {
			r.drawOrbit(c, vp, d)
		} else {
			r.drawSurface(c, f, proj, vp, d)
		}
	}

	// Blended surfaces are depth tested against the opaque pass but never write depth
	for i := range f.Directives {
		d := &f.Directives[i]
		if d.Translucent() && d.Kind != scene.KindOrbit {
			r.drawSurface(c, f, proj, vp, d)
		}
	}
}

func (r *Rasterizer) mesh(d *scene.Directive) *scene.Mesh {
	var key meshKey
	switch d.Kind {
	case scene.KindRing:
		key = meshKey{d.Kind, d.Inner, d.Outer, d.Slices, d.Stacks}
	default:
		key = meshKey{d.Kind, d.Radius, 0, d.Slices, d.Stacks}
	}
	if m, ok := r.meshes[key]; ok {
		return m
	}

	var m scene.Mesh
	if d.Kind == scene.KindRing {
		m = scene.Disk(d.Inner, d.Outer, d.Slices, d.Stacks)
	} else {
		m = scene.Sphere(d.Radius, d.Slices, d.Stacks)
	}
	r.meshes[key] = &m
	return &m
}

func (r *Rasterizer) drawSurface(c *Canvas, f scene.Frame, proj, vp mgl64.Mat4, d *scene.Directive) {
	m := r.mesh(d)
	mvp := vp.Mul4(d.Model)
	normalMat := d.Model.Mat3()

	if cap(r.scratch) < len(m.Vertices) {
		r.scratch = make([]screenVertex, len(m.Vertices))
	}
	sv := r.scratch[:len(m.Vertices)]

	w, h := float64(c.Width), float64(c.Height)
	for i := range m.Vertices {
		v := &m.Vertices[i]
		clip := mvp.Mul4x1(v.Pos.Vec4(1))
		if clip.W() < constants.NearPlane {
			sv[i].ok = false
			continue
		}
		inv := 1 / clip.W()
		sv[i] = screenVertex{
			x:      (clip.X()*inv + 1) * 0.5 * w,
			y:      (1 - clip.Y()*inv) * 0.5 * h,
			z:      clip.Z() * inv,
			invW:   inv,
			world:  d.Model.Mul4x1(v.Pos.Vec4(1)).Vec3(),
			normal: normalMat.Mul3x1(v.Normal),
			u:      v.U,
			v:      v.V,
			ok:     true,
		}
	}

	shade := r.shader(c, f, proj, d)
	alpha := d.Alpha
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, cc := &sv[m.Indices[t]], &sv[m.Indices[t+1]], &sv[m.Indices[t+2]]
		if !a.ok || !b.ok || !cc.ok {
			continue
		}
		fillTriangle(c, a, b, cc, shade, alpha)
	}
}

// edge is twice the signed area of (a, b, p)
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// fillTriangle scan-converts with edge functions and perspective-correct attributes
func fillTriangle(c *Canvas, a, b, cv *screenVertex, shade shader, alpha float64) {
	area := edge(a.x, a.y, b.x, b.y, cv.x, cv.y)
	if math.Abs(area) < 1e-12 {
		return
	}

	minX := max(0, int(math.Floor(min(a.x, b.x, cv.x))))
	maxX := min(c.Width-1, int(math.Ceil(max(a.x, b.x, cv.x))))
	minY := max(0, int(math.Floor(min(a.y, b.y, cv.y))))
	maxY := min(c.Height-1, int(math.Ceil(max(a.y, b.y, cv.y))))

	var fr fragment
	for py := minY; py <= maxY; py++ {
		sy := float64(py) + 0.5
		for px := minX; px <= maxX; px++ {
			sx := float64(px) + 0.5
			w0 := edge(b.x, b.y, cv.x, cv.y, sx, sy) / area
			w1 := edge(cv.x, cv.y, a.x, a.y, sx, sy) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*cv.z
			if z < -1 || z > 1 || z >= c.Depth[py*c.Width+px] {
				continue
			}

			// Perspective-correct weights
			iw := w0*a.invW + w1*b.invW + w2*cv.invW
			p0, p1, p2 := w0*a.invW/iw, w1*b.invW/iw, w2*cv.invW/iw

			fr.u = p0*a.u + p1*b.u + p2*cv.u
			fr.v = p0*a.v + p1*b.v + p2*cv.v
			fr.normal = a.normal.Mul(p0).Add(b.normal.Mul(p1)).Add(cv.normal.Mul(p2))
			fr.world = a.world.Mul(p0).Add(b.world.Mul(p1)).Add(cv.world.Mul(p2))

			c.Plot(px, py, z, shade(&fr), alpha)
		}
	}
}

// shader builds the per-fragment color function for a directive
func (r *Rasterizer) shader(c *Canvas, f scene.Frame, proj mgl64.Mat4, d *scene.Directive) shader {
	tex := r.texture(d.Texture)
	lod := 0.0
	if tex != nil {
		lod = tex.LevelFor(texelsPerPixel(c, f, proj, d, tex))
	}
	tint := d.Tint
	twoSided := d.Kind == scene.KindRing

	return func(fr *fragment) RGB {
		base := tint
		if tex != nil {
			base = tex.Sample(fr.u, fr.v, lod)
		}
		if !d.Lit {
			return FromColorful(base)
		}

		k := constants.AmbientLight
		if n := fr.normal; n.Len() > 1e-9 {
			l := f.Light.Sub(fr.world)
			if l.Len() > 1e-9 {
				diff := n.Normalize().Dot(l.Normalize())
				if twoSided {
					diff = math.Abs(diff)
				}
				k += (1 - constants.AmbientLight) * max(0, diff)
			}
		}
		return FromColorful(colorful.Color{R: base.R * k, G: base.G * k, B: base.B * k})
	}
}

func (r *Rasterizer) texture(h texture.Handle) *texture.Texture {
	if r.Textures == nil || h == texture.NoTexture {
		return nil
	}
	t, ok := r.Textures.Get(h)
	if !ok {
		return nil
	}
	return t
}

// texelsPerPixel estimates texture minification from the projected body size
// The texture width wraps the full circumference
func texelsPerPixel(c *Canvas, f scene.Frame, proj mgl64.Mat4, d *scene.Directive, tex *texture.Texture) float64 {
	radius := d.Radius
	if d.Kind == scene.KindRing {
		radius = d.Outer
	}
	center := f.View.Mul4(d.Model).Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	depth := -center.Z()
	if depth < constants.NearPlane || radius <= 0 {
		return 1
	}

	pixelRadius := radius * proj.At(1, 1) * float64(c.Height) * 0.5 / depth
	if pixelRadius <= 0 {
		return 1
	}
	tw, _ := tex.Size()
	return float64(tw) / (2 * math.Pi * pixelRadius)
}

func (r *Rasterizer) drawOrbit(c *Canvas, vp mgl64.Mat4, d *scene.Directive) {
	key := meshKey{d.Kind, d.Radius, 0, d.Slices, 0}
	pts, ok := r.loops[key]
	if !ok {
		pts = scene.OrbitLoop(d.Radius, d.Slices)
		r.loops[key] = pts
	}
	if len(pts) < 2 {
		return
	}

	mvp := vp.Mul4(d.Model)
	col := orbitColor(d.Tint)

	w, h := float64(c.Width), float64(c.Height)
	project := func(p mgl64.Vec3) (x, y, z float64, ok bool) {
		clip := mvp.Mul4x1(p.Vec4(1))
		if clip.W() < constants.NearPlane {
			return 0, 0, 0, false
		}
		inv := 1 / clip.W()
		return (clip.X()*inv + 1) * 0.5 * w, (1 - clip.Y()*inv) * 0.5 * h, clip.Z() * inv, true
	}

	px, py, pz, pok := project(pts[len(pts)-1])
	for _, p := range pts {
		x, y, z, ok := project(p)
		if ok && pok {
			drawLine(c, px, py, pz, x, y, z, col)
		}
		px, py, pz, pok = x, y, z, ok
	}
}

// drawLine steps one pixel at a time along the major axis with interpolated depth
func drawLine(c *Canvas, x0, y0, z0, x1, y1, z1 float64, col RGB) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.Plot(int(x0), int(y0), z0, col, 1)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		z := z0 + (z1-z0)*t
		if z < -1 || z > 1 {
			continue
		}
		c.Plot(int(math.Floor(x0+dx*t)), int(math.Floor(y0+dy*t)), z, col, 1)
	}
}

// orbitColor is the dim gray orbit path, shifted 30% toward the body tint
func orbitColor(tint colorful.Color) RGB {
	brightness := constants.OrbitLineBrightness
	gray := uint8(255 * brightness)
	return RGB{gray, gray, gray}.Blend(FromColorful(tint), 0.3)
}
