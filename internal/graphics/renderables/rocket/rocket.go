package rocket

import (
	"mini-orrery/internal/camera"
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	BodyColor   = graphics.White
	NoseColor   = graphics.RGB(0.9, 0.2, 0.2)
	EngineColor = graphics.RGB(0.4, 0.4, 0.4)
)

// Rocket implements the two-stage rocket model of chase mode
type Rocket struct{}

// NewRocket creates a new rocket renderable
func NewRocket() *Rocket {
	return &Rocket{}
}

func (r *Rocket) Init() error { return nil }

func (r *Rocket) Render(ctx renderer.RenderContext) {
	if ctx.Scene.Mode() != camera.ModeChase {
		return
	}
	defer profiling.Track("renderer.rocket")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	graphics.Modify(c, func(st *graphics.RenderState) { st.Texturing = false })
	drawModel(c, ctx.Scene.Rocket.Transform(), ctx.Scene.Rocket.Size)
}

// drawModel draws the rocket along local +Z with its base at the origin
func drawModel(c graphics.Canvas, model mgl32.Mat4, size float32) {
	bodyHeight := size * 0.7
	bodyRadius := size / 5
	stage2Height := size * 0.5
	stage2Radius := bodyRadius * 0.7

	c.SetColor(BodyColor)
	c.DrawCylinder(model, bodyRadius, bodyRadius, bodyHeight)
	top := model.Mul4(mgl32.Translate3D(0, 0, bodyHeight))
	c.DrawDisk(top, 0, bodyRadius)

	// second stage, capped at its base
	c.DrawCylinder(top, stage2Radius, stage2Radius, stage2Height)
	c.DrawDisk(top, 0, stage2Radius)

	c.SetColor(NoseColor)
	nose := model.Mul4(mgl32.Translate3D(0, 0, bodyHeight+stage2Height))
	c.DrawCylinder(nose, stage2Radius, 0, size/2)

	c.SetColor(BodyColor)
	for i := 0; i < 3; i++ {
		fin := model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(i) * 120)))
		c.DrawPrimitive(fin, graphics.Quads, finQuad(bodyRadius, size/3, size/2))
	}

	c.SetColor(EngineColor)
	bell := model.Mul4(mgl32.Translate3D(0, 0, -size*0.1))
	c.DrawCylinder(bell, bodyRadius*0.8, bodyRadius*0.5, size*0.2)
}

// finQuad is a swept fin in the XZ plane sticking out from the hull
func finQuad(r, w, h float32) []graphics.Vertex {
	return []graphics.Vertex{
		{Pos: mgl32.Vec3{r, 0, 0}, UV: mgl32.Vec2{0, 0}, Color: BodyColor},
		{Pos: mgl32.Vec3{r + w, 0, h * 0.2}, UV: mgl32.Vec2{1, 0}, Color: BodyColor},
		{Pos: mgl32.Vec3{r + w, 0, h}, UV: mgl32.Vec2{1, 1}, Color: BodyColor},
		{Pos: mgl32.Vec3{r, 0, h}, UV: mgl32.Vec2{0, 1}, Color: BodyColor},
	}
}

func (r *Rocket) Dispose() {}

func (r *Rocket) SetViewport(width, height int) {}
