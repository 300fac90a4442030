package blackhole

import (
	"mini-orrery/internal/camera"
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// BlackHole implements the camera-facing black hole sprite of chase mode
type BlackHole struct{}

// NewBlackHole creates a new black hole renderable
func NewBlackHole() *BlackHole {
	return &BlackHole{}
}

func (b *BlackHole) Init() error { return nil }

func (b *BlackHole) Render(ctx renderer.RenderContext) {
	if ctx.Scene.Mode() != camera.ModeChase {
		return
	}
	defer profiling.Track("renderer.blackhole")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	bh := ctx.Scene.BlackHole
	graphics.Modify(c, func(st *graphics.RenderState) {
		st.Texturing = true
		st.TexMode = graphics.TexModulate
	})
	c.BindTexture(ctx.Textures.Get(graphics.TexBlackHole))
	c.DrawPrimitive(mgl32.Translate3D(bh.Position.Elem()), graphics.Quads, Billboard(ctx.View, 2*bh.Radius))
}

// Billboard returns a quad of half-size s spanned by the camera's right and
// up axes, so it always faces the viewer
func Billboard(view mgl32.Mat4, s float32) []graphics.Vertex {
	right := view.Row(0).Vec3().Mul(s)
	up := view.Row(1).Vec3().Mul(s)
	return []graphics.Vertex{
		{Pos: right.Mul(-1).Sub(up), UV: mgl32.Vec2{0, 0}, Color: graphics.White},
		{Pos: right.Sub(up), UV: mgl32.Vec2{1, 0}, Color: graphics.White},
		{Pos: right.Add(up), UV: mgl32.Vec2{1, 1}, Color: graphics.White},
		{Pos: up.Sub(right), UV: mgl32.Vec2{0, 1}, Color: graphics.White},
	}
}

func (b *BlackHole) Dispose() {}

func (b *BlackHole) SetViewport(width, height int) {}
