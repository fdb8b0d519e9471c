package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a mesh vertex in local space
type Vertex struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	U, V   float64
}

// Mesh is an indexed triangle list
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns the triangle count
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Sphere tessellates a UV sphere with poles on the Y axis
// u runs with longitude, v from the north pole (0) to the south pole (1)
func Sphere(radius float64, slices, stacks int) Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, (stacks+1)*(slices+1)),
		Indices:  make([]uint32, 0, stacks*slices*6),
	}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		sp, cp := math.Sincos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			st, ct := math.Sincos(theta)
			n := mgl64.Vec3{sp * ct, cp, -sp * st}
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    n.Mul(radius),
				Normal: n,
				U:      float64(j) / float64(slices),
				V:      float64(i) / float64(stacks),
			})
		}
	}

	m.Indices = appendGrid(m.Indices, stacks, slices)
	return m
}

// Disk tessellates a flat annulus in the XZ plane facing +Y
// u runs radially from inner (0) to outer (1), v with the angle
func Disk(inner, outer float64, slices, loops int) Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, (loops+1)*(slices+1)),
		Indices:  make([]uint32, 0, loops*slices*6),
	}

	up := mgl64.Vec3{0, 1, 0}
	for l := 0; l <= loops; l++ {
		t := float64(l) / float64(loops)
		r := inner + (outer-inner)*t
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			st, ct := math.Sincos(theta)
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    mgl64.Vec3{r * ct, 0, -r * st},
				Normal: up,
				U:      t,
				V:      float64(j) / float64(slices),
			})
		}
	}

	m.Indices = appendGrid(m.Indices, loops, slices)
	return m
}

// appendGrid emits two triangles per cell of a (rows+1) x (cols+1) vertex grid
func appendGrid(idx []uint32, rows, cols int) []uint32 {
	stride := uint32(cols + 1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			idx = append(idx, a, b, a+1, a+1, b, b+1)
		}
	}
	return idx
}

// OrbitLoop returns segments points on a circle of radius in the y=0 plane
// The loop is closed: the last point connects back to the first
func OrbitLoop(radius float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		st, ct := math.Sincos(theta)
		pts[i] = mgl64.Vec3{radius * ct, 0, -radius * st}
	}
	return pts
}
