package overlay

import (
	"mini-orrery/internal/camera"
	"mini-orrery/internal/effects"
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"
	"mini-orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const StarLineWidth = 2

// StarColor is the head colour of a shooting star before fading
var StarColor = mgl32.Vec3{1, 1, 0.8}

// Overlay implements the 2D layer drawn over the scene: shooting stars,
// exhaust smoke and the rocket cursor
type Overlay struct{}

// NewOverlay creates a new overlay renderable
func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Init() error { return nil }

func (o *Overlay) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.overlay")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	c.SetProjection(graphics.OverlayProjection(ctx.Width, ctx.Height))
	c.SetView(mgl32.Ident4())
	graphics.Modify(c, func(st *graphics.RenderState) {
		st.DepthTest = false
		st.Texturing = false
		st.LineWidth = StarLineWidth
	})

	s := ctx.Scene
	if verts := StarLines(s.Stars.Stars); len(verts) > 0 {
		c.DrawPrimitive(mgl32.Ident4(), graphics.Lines, verts)
	}
	if verts := SmokeQuads(s.Smoke.Particles); len(verts) > 0 {
		c.DrawPrimitive(mgl32.Ident4(), graphics.Quads, verts)
	}

	if s.Mode() != camera.ModeOverview {
		return
	}
	mx, my := s.Camera.Cursor()
	half := float32(scene.SpriteSize) / 2
	model := mgl32.Translate3D(float32(mx)+half, float32(my)+half, 0).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Camera.Tilt())))

	graphics.Modify(c, func(st *graphics.RenderState) {
		st.Texturing = true
		st.TexMode = graphics.TexModulate
	})
	c.BindTexture(ctx.Textures.Get(graphics.TexRocket))
	c.SetColor(graphics.White)
	c.DrawPrimitive(model, graphics.Quads, CursorSprite(scene.SpriteSize))
}

// StarLines returns one segment per star, from its head back to its tail
func StarLines(stars []effects.ShootingStar) []graphics.Vertex {
	verts := make([]graphics.Vertex, 0, len(stars)*2)
	for _, st := range stars {
		color := StarColor.Vec4(st.Alpha())
		tail := st.Tail()
		verts = append(verts,
			graphics.Vertex{Pos: st.Position.Vec3(0), Color: color},
			graphics.Vertex{Pos: tail.Vec3(0), Color: color},
		)
	}
	return verts
}

// SmokeQuads returns one square per particle, centred on it and faded by age
func SmokeQuads(particles []effects.Particle) []graphics.Vertex {
	verts := make([]graphics.Vertex, 0, len(particles)*4)
	for _, p := range particles {
		col := p.Color.Clamped()
		color := mgl32.Vec4{float32(col.R), float32(col.G), float32(col.B), p.Alpha()}
		verts = append(verts, graphics.Quad(p.Position.X(), p.Position.Y(), p.Size, p.Size, color)...)
	}
	return verts
}

// CursorSprite returns a size*size quad centred on the origin. Texture rows
// are flipped so the sprite shows upright under the y-down projection.
func CursorSprite(size float32) []graphics.Vertex {
	h := size / 2
	return []graphics.Vertex{
		{Pos: mgl32.Vec3{-h, -h, 0}, UV: mgl32.Vec2{0, 1}, Color: graphics.White},
		{Pos: mgl32.Vec3{h, -h, 0}, UV: mgl32.Vec2{1, 1}, Color: graphics.White},
		{Pos: mgl32.Vec3{h, h, 0}, UV: mgl32.Vec2{1, 0}, Color: graphics.White},
		{Pos: mgl32.Vec3{-h, h, 0}, UV: mgl32.Vec2{0, 0}, Color: graphics.White},
	}
}

func (o *Overlay) Dispose() {}

func (o *Overlay) SetViewport(width, height int) {}
