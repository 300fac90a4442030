package graphics

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureHandle names an uploaded texture. Zero means no texture.
type TextureHandle uint32

// Primitive is the topology of an immediate vertex list
type Primitive int

const (
	Lines Primitive = iota
	LineLoop
	Quads // four vertices per quad, wound around the edge
)

// TexMode selects how a bound texture combines with the current colour
type TexMode int

const (
	TexModulate TexMode = iota // texel * colour
	TexReplace                 // texel only
)

// Vertex is one point of an immediate primitive. Primitives carry their own
// colour; meshes use the colour set with SetColor.
type Vertex struct {
	Pos   mgl32.Vec3
	UV    mgl32.Vec2
	Color mgl32.Vec4
}

// RenderState is the fixed-function style switchboard every draw runs under
type RenderState struct {
	DepthTest  bool
	DepthWrite bool
	Blend      bool // src-alpha, one-minus-src-alpha
	Texturing  bool
	TexMode    TexMode
	LineWidth  float32
}

// DefaultState is the state the scene expects between renderables
func DefaultState() RenderState {
	return RenderState{
		DepthTest:  true,
		DepthWrite: true,
		Blend:      true,
		Texturing:  true,
		TexMode:    TexModulate,
		LineWidth:  1,
	}
}

// Canvas receives the draw commands of a frame. Model matrices are
// object-to-world; the canvas combines them with its projection and view.
type Canvas interface {
	Clear()

	State() RenderState
	SetState(s RenderState)
	Projection() mgl32.Mat4
	SetProjection(m mgl32.Mat4)
	View() mgl32.Mat4
	SetView(m mgl32.Mat4)

	BindTexture(h TextureHandle)
	SetColor(c mgl32.Vec4)

	// DrawSphere draws a textured sphere with poles on local Z. Inside
	// spheres face inwards, for sky domes.
	DrawSphere(model mgl32.Mat4, radius float32, inside bool)
	// DrawDisk draws an annulus in the local XY plane
	DrawDisk(model mgl32.Mat4, inner, outer float32)
	// DrawCylinder draws a (possibly conical) tube along local +Z from z=0
	DrawCylinder(model mgl32.Mat4, base, top, height float32)
	DrawPrimitive(model mgl32.Mat4, p Primitive, verts []Vertex)
}

// Uploader turns decoded images into texture handles
type Uploader interface {
	Upload(img *image.RGBA) (TextureHandle, error)
}

// Scoped saves the canvas state, projection and view, and returns a function
// restoring them. Usage: defer graphics.Scoped(canvas)()
func Scoped(c Canvas) func() {
	state, proj, view := c.State(), c.Projection(), c.View()
	return func() {
		c.SetState(state)
		c.SetProjection(proj)
		c.SetView(view)
	}
}

// Modify applies f to a copy of the current state and makes it current
func Modify(c Canvas, f func(s *RenderState)) {
	s := c.State()
	f(&s)
	c.SetState(s)
}

// White is the neutral modulation colour
var White = mgl32.Vec4{1, 1, 1, 1}

// RGB returns an opaque colour
func RGB(r, g, b float32) mgl32.Vec4 {
	return mgl32.Vec4{r, g, b, 1}
}
