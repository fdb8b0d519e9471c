package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/view"
)

const eps = 1e-9

func spheres(f Frame) []Directive {
	var out []Directive
	for _, d := range f.Directives {
		if d.Kind == KindSphere {
			out = append(out, d)
		}
	}
	return out
}

func countKind(f Frame, k DirectiveKind) int {
	n := 0
	for _, d := range f.Directives {
		if d.Kind == k {
			n++
		}
	}
	return n
}

func origin(m mgl64.Mat4) mgl64.Vec3 {
	return m.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

func TestComposeFullViewDrawsEveryBody(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()

	f := Compose(v, 0, cat)

	if got := len(spheres(f)); got != constants.BodyCount {
		t.Fatalf("sphere directives = %d, want %d", got, constants.BodyCount)
	}
	if got := countKind(f, KindOrbit); got != 0 {
		t.Errorf("orbit directives with orbits hidden = %d, want 0", got)
	}
	if got := countKind(f, KindRing); got != constants.RingBands {
		t.Errorf("ring directives = %d, want %d", got, constants.RingBands)
	}
	if f.Headlight || f.Light.Len() != 0 {
		t.Errorf("full view light = %v headlight %v, want origin", f.Light, f.Headlight)
	}
	if f.Eye.Sub(mgl64.Vec3{0, 0, constants.DefaultDistance}).Len() > eps {
		t.Errorf("eye = %v", f.Eye)
	}
}

func TestComposeFullViewPlacement(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()

	// Earth at angle 45 orbits 90 degrees about +Y: +X rotates onto -Z
	f := Compose(v, 45, cat)
	for _, d := range spheres(f) {
		if d.Body != catalog.Earth {
			continue
		}
		if math.Abs(d.OrbitAngle-90) > eps {
			t.Errorf("earth orbit angle = %v, want 90", d.OrbitAngle)
		}
		pos := origin(d.Model)
		want := mgl64.Vec3{0, 0, -cat[catalog.Earth].OrbitRadius}
		if pos.Sub(want).Len() > 1e-6 {
			t.Errorf("earth position = %v, want %v", pos, want)
		}
		if !d.Lit {
			t.Error("planet should be lit in full view")
		}
	}
}

func TestComposeStarIsEmissiveAtOrigin(t *testing.T) {
	cat := catalog.Default()
	f := Compose(view.NewViewState(), 120, cat)

	star := spheres(f)[0]
	if star.Body != catalog.Sun {
		t.Fatalf("first sphere = body %d, want star", star.Body)
	}
	if star.Lit {
		t.Error("star should be emissive in full view")
	}
	if origin(star.Model).Len() > eps {
		t.Errorf("star position = %v, want origin", origin(star.Model))
	}
}

func TestComposeOrbitPaths(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()
	v.ToggleOrbits()

	f := Compose(v, 0, cat)

	// Every body except the star gets a path
	if got := countKind(f, KindOrbit); got != constants.BodyCount-1 {
		t.Fatalf("orbit directives = %d, want %d", got, constants.BodyCount-1)
	}
	for _, d := range f.Directives {
		if d.Kind != KindOrbit {
			continue
		}
		if d.Radius != cat[d.Body].OrbitRadius {
			t.Errorf("body %d orbit radius = %v, want %v", d.Body, d.Radius, cat[d.Body].OrbitRadius)
		}
		if d.Slices != constants.OrbitSegments {
			t.Errorf("orbit segments = %d", d.Slices)
		}
	}
}

func TestComposeFocusCentersBody(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()
	v.Select(catalog.Saturn)

	f := Compose(v, 30, cat)

	ss := spheres(f)
	if len(ss) != 1 {
		t.Fatalf("sphere directives = %d, want 1", len(ss))
	}
	d := ss[0]
	if d.Body != catalog.Saturn {
		t.Errorf("body = %d, want %d", d.Body, catalog.Saturn)
	}
	if d.OrbitRadius != 0 || origin(d.Model).Len() > eps {
		t.Errorf("focused body not at origin: radius %v pos %v", d.OrbitRadius, origin(d.Model))
	}
	if math.Abs(d.OrbitAngle-30*0.8) > eps {
		t.Errorf("focused body angle = %v, want %v", d.OrbitAngle, 30*0.8)
	}
	if !f.Headlight || f.Light != f.Eye {
		t.Errorf("focus headlight = %v light %v eye %v", f.Headlight, f.Light, f.Eye)
	}
	if got := countKind(f, KindRing); got != constants.RingBands {
		t.Errorf("saturn ring bands = %d, want %d", got, constants.RingBands)
	}
}

func TestComposeFocusStarIsLit(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()
	v.Select(catalog.Sun)

	f := Compose(v, 0, cat)
	ss := spheres(f)
	if len(ss) != 1 || !ss[0].Lit {
		t.Fatalf("focused star directives = %+v", ss)
	}
}

func TestComposeFocusHidesOrbitPath(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()
	v.ToggleOrbits()
	v.Select(catalog.Earth)

	f := Compose(v, 0, cat)
	if got := countKind(f, KindOrbit); got != 0 {
		t.Errorf("orbit directives in focus = %d, want 0", got)
	}
}

func TestRingBandsPartitionRing(t *testing.T) {
	cat := catalog.Default()
	ring := cat[catalog.Saturn].Ring
	f := Compose(view.NewViewState(), 0, cat)

	prevOuter := ring.Inner
	prevAlpha := 2.0
	for _, d := range f.Directives {
		if d.Kind != KindRing {
			continue
		}
		if math.Abs(d.Inner-prevOuter) > eps {
			t.Errorf("band inner = %v, want %v", d.Inner, prevOuter)
		}
		if d.Alpha >= prevAlpha || d.Alpha <= 0 {
			t.Errorf("band alpha = %v after %v", d.Alpha, prevAlpha)
		}
		if !d.Translucent() {
			t.Error("ring band should be translucent")
		}
		prevOuter, prevAlpha = d.Outer, d.Alpha
	}
	if math.Abs(prevOuter-ring.Outer) > eps {
		t.Errorf("last band outer = %v, want %v", prevOuter, ring.Outer)
	}
}

func TestComposeInvalidSelection(t *testing.T) {
	cat := catalog.Default()
	v := view.NewViewState()
	v.Selected = 42

	f := Compose(v, 0, cat)
	if len(f.Directives) != 0 {
		t.Errorf("directives for invalid selection = %d, want 0", len(f.Directives))
	}
}
