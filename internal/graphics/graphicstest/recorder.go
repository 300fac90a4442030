// Package graphicstest provides a Canvas that records draw commands instead of
// issuing them, for testing render code without a GL context.
package graphicstest

import (
	"fmt"
	"image"
	"mini-orrery/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies a recorded draw call
type Kind int

const (
	Sphere Kind = iota
	Disk
	Cylinder
	Primitive
)

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Disk:
		return "disk"
	case Cylinder:
		return "cylinder"
	default:
		return "primitive"
	}
}

// Draw is one recorded draw call together with the canvas state it ran under
type Draw struct {
	Kind       Kind
	Model      mgl32.Mat4
	State      graphics.RenderState
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Texture    graphics.TextureHandle
	Color      mgl32.Vec4

	Radius float32 // sphere
	Inside bool
	Inner  float32 // disk
	Outer  float32
	Base   float32 // cylinder
	Top    float32
	Height float32

	Primitive graphics.Primitive
	Vertices  []graphics.Vertex
}

// Recorder implements graphics.Canvas and graphics.Uploader
type Recorder struct {
	Draws   []Draw
	Clears  int
	Uploads []*image.RGBA
	// FailUploads makes every Upload return an error
	FailUploads bool

	state   graphics.RenderState
	proj    mgl32.Mat4
	view    mgl32.Mat4
	texture graphics.TextureHandle
	color   mgl32.Vec4
}

// NewRecorder returns a recorder in the default render state
func NewRecorder() *Recorder {
	return &Recorder{
		state: graphics.DefaultState(),
		proj:  mgl32.Ident4(),
		view:  mgl32.Ident4(),
		color: graphics.White,
	}
}

// Reset drops the recorded draws but keeps the current state
func (r *Recorder) Reset() {
	r.Draws = nil
	r.Clears = 0
}

func (r *Recorder) Clear() { r.Clears++ }

func (r *Recorder) State() graphics.RenderState     { return r.state }
func (r *Recorder) SetState(s graphics.RenderState) { r.state = s }
func (r *Recorder) Projection() mgl32.Mat4           { return r.proj }
func (r *Recorder) SetProjection(m mgl32.Mat4)       { r.proj = m }
func (r *Recorder) View() mgl32.Mat4                 { return r.view }
func (r *Recorder) SetView(m mgl32.Mat4)             { r.view = m }

func (r *Recorder) BindTexture(h graphics.TextureHandle) { r.texture = h }
func (r *Recorder) SetColor(c mgl32.Vec4)                { r.color = c }

func (r *Recorder) DrawSphere(model mgl32.Mat4, radius float32, inside bool) {
	d := r.draw(Sphere, model)
	d.Radius, d.Inside = radius, inside
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) DrawDisk(model mgl32.Mat4, inner, outer float32) {
	d := r.draw(Disk, model)
	d.Inner, d.Outer = inner, outer
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) DrawCylinder(model mgl32.Mat4, base, top, height float32) {
	d := r.draw(Cylinder, model)
	d.Base, d.Top, d.Height = base, top, height
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) DrawPrimitive(model mgl32.Mat4, p graphics.Primitive, verts []graphics.Vertex) {
	d := r.draw(Primitive, model)
	d.Primitive = p
	d.Vertices = append([]graphics.Vertex(nil), verts...)
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) draw(k Kind, model mgl32.Mat4) Draw {
	return Draw{
		Kind:       k,
		Model:      model,
		State:      r.state,
		Projection: r.proj,
		View:       r.view,
		Texture:    r.texture,
		Color:      r.color,
	}
}

// Upload stores the image and hands out sequential handles starting at 1
func (r *Recorder) Upload(img *image.RGBA) (graphics.TextureHandle, error) {
	if r.FailUploads {
		return 0, fmt.Errorf("upload disabled")
	}
	r.Uploads = append(r.Uploads, img)
	return graphics.TextureHandle(len(r.Uploads)), nil
}

// Kinds lists the kinds of all recorded draws in order
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Draws))
	for i, d := range r.Draws {
		out[i] = d.Kind
	}
	return out
}

// WithTexture returns the draws that ran with texture h bound and texturing on
func (r *Recorder) WithTexture(h graphics.TextureHandle) []Draw {
	var out []Draw
	for _, d := range r.Draws {
		if d.Texture == h && d.State.Texturing {
			out = append(out, d)
		}
	}
	return out
}
