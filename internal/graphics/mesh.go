package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation of the quadric shapes
const (
	SphereSlices   = 50
	SphereStacks   = 50
	DiskSlices     = 50
	DiskLoops      = 50
	CylinderSlices = 20
	CylinderStacks = 5
	OrbitSegments  = 100
)

// Mesh is an indexed triangle list
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// UnitSphere builds a sphere of radius 1 with poles on Z. Texture s runs
// around the equator and t from the -Z pole (0) to the +Z pole (1).
// An inside sphere has its winding reversed so it faces its centre.
func UnitSphere(slices, stacks int, inside bool) Mesh {
	m := Mesh{Vertices: make([]Vertex, 0, (slices+1)*(stacks+1))}
	for i := 0; i <= stacks; i++ {
		rho := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			if j == slices {
				theta = 0
			}
			x := -math.Sin(theta) * math.Sin(rho)
			y := math.Cos(theta) * math.Sin(rho)
			z := math.Cos(rho)
			m.Vertices = append(m.Vertices, Vertex{
				Pos:   mgl32.Vec3{float32(x), float32(y), float32(z)},
				UV:    mgl32.Vec2{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)},
				Color: White,
			})
		}
	}
	m.Indices = gridIndices(slices, stacks, inside)
	return m
}

// UnitDisk builds an annulus in the XY plane with outer radius 1. Texture
// coordinates map the outer circle onto the unit square.
func UnitDisk(innerRatio float32, slices, loops int) Mesh {
	m := Mesh{Vertices: make([]Vertex, 0, (slices+1)*(loops+1))}
	for l := 0; l <= loops; l++ {
		r := innerRatio + (1-innerRatio)*float32(l)/float32(loops)
		for j := 0; j <= slices; j++ {
			a := 2 * math.Pi * float64(j) / float64(slices)
			x := r * float32(math.Sin(a))
			y := r * float32(math.Cos(a))
			m.Vertices = append(m.Vertices, Vertex{
				Pos:   mgl32.Vec3{x, y, 0},
				UV:    mgl32.Vec2{0.5 + x/2, 0.5 + y/2},
				Color: White,
			})
		}
	}
	m.Indices = gridIndices(slices, loops, false)
	return m
}

// UnitCylinder builds a tube of height 1 along +Z whose radius goes
// linearly from base at z=0 to top at z=1.
func UnitCylinder(base, top float32, slices, stacks int) Mesh {
	m := Mesh{Vertices: make([]Vertex, 0, (slices+1)*(stacks+1))}
	for i := 0; i <= stacks; i++ {
		z := float32(i) / float32(stacks)
		r := base + (top-base)*z
		for j := 0; j <= slices; j++ {
			a := 2 * math.Pi * float64(j) / float64(slices)
			m.Vertices = append(m.Vertices, Vertex{
				Pos:   mgl32.Vec3{r * float32(math.Sin(a)), r * float32(math.Cos(a)), z},
				UV:    mgl32.Vec2{float32(j) / float32(slices), z},
				Color: White,
			})
		}
	}
	m.Indices = gridIndices(slices, stacks, false)
	return m
}

// gridIndices triangulates a (cols+1)*(rows+1) vertex grid
func gridIndices(cols, rows int, reverse bool) []uint32 {
	idx := make([]uint32, 0, cols*rows*6)
	stride := uint32(cols + 1)
	for i := uint32(0); i < uint32(rows); i++ {
		for j := uint32(0); j < uint32(cols); j++ {
			a := i*stride + j
			b := a + stride
			if reverse {
				idx = append(idx, a, a+1, b, a+1, b+1, b)
			} else {
				idx = append(idx, a, b, a+1, a+1, b, b+1)
			}
		}
	}
	return idx
}

// Circle returns a closed loop of the given radius in the XZ plane
func Circle(radius float32, segments int, color mgl32.Vec4) []Vertex {
	verts := make([]Vertex, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, Vertex{
			Pos:   mgl32.Vec3{radius * float32(math.Cos(a)), 0, radius * float32(math.Sin(a))},
			Color: color,
		})
	}
	return verts
}

// Quad returns an axis-aligned screen quad centred on (cx, cy), wound
// top-left, top-right, bottom-right, bottom-left.
func Quad(cx, cy, w, h float32, color mgl32.Vec4) []Vertex {
	hw, hh := w/2, h/2
	return []Vertex{
		{Pos: mgl32.Vec3{cx - hw, cy - hh, 0}, UV: mgl32.Vec2{0, 0}, Color: color},
		{Pos: mgl32.Vec3{cx + hw, cy - hh, 0}, UV: mgl32.Vec2{1, 0}, Color: color},
		{Pos: mgl32.Vec3{cx + hw, cy + hh, 0}, UV: mgl32.Vec2{1, 1}, Color: color},
		{Pos: mgl32.Vec3{cx - hw, cy + hh, 0}, UV: mgl32.Vec2{0, 1}, Color: color},
	}
}

// Triangulate expands a quad list into a triangle list
func Triangulate(quads []Vertex) []Vertex {
	n := len(quads) / 4
	out := make([]Vertex, 0, n*6)
	for q := 0; q < n; q++ {
		v := quads[q*4 : q*4+4]
		out = append(out, v[0], v[1], v[2], v[0], v[2], v[3])
	}
	return out
}
