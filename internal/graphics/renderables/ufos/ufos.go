package ufos

import (
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	SaucerColor    = graphics.RGB(0.6, 0.6, 0.7)
	DomeColor      = graphics.RGB(0.5, 0.8, 0.9)
	UndersideColor = graphics.RGB(0.8, 1.0, 0.8)
)

// UFOs implements the flying saucers
type UFOs struct{}

// NewUFOs creates a new UFO renderable
func NewUFOs() *UFOs {
	return &UFOs{}
}

func (u *UFOs) Init() error { return nil }

// Render draws each UFO as a flattened saucer, a glass dome and a glowing
// disk underneath, all untextured
func (u *UFOs) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.ufos")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	graphics.Modify(c, func(st *graphics.RenderState) { st.Texturing = false })
	for _, ufo := range ctx.Scene.UFOs {
		base := ufo.Transform(ctx.T)
		size := ufo.Size

		c.SetColor(SaucerColor)
		c.DrawSphere(base.Mul4(mgl32.Scale3D(1, 0.3, 1)), size, false)

		c.SetColor(DomeColor)
		dome := base.Mul4(mgl32.Translate3D(0, size*0.2, 0)).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
		c.DrawSphere(dome, size, false)

		c.SetColor(UndersideColor)
		c.DrawDisk(base, 0, size*0.3)
	}
}

func (u *UFOs) Dispose() {}

func (u *UFOs) SetViewport(width, height int) {}
