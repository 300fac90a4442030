package sun

import (
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/orbit"
	"mini-orrery/internal/profiling"
)

// Sun implements the pulsing, spinning sun at the origin
type Sun struct{}

// NewSun creates a new sun renderable
func NewSun() *Sun {
	return &Sun{}
}

func (s *Sun) Init() error { return nil }

func (s *Sun) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.sun")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	glow := orbit.SunGlow(ctx.T)
	graphics.Modify(c, func(st *graphics.RenderState) {
		st.Texturing = true
		st.TexMode = graphics.TexModulate
	})
	c.BindTexture(ctx.Textures.Get(graphics.TexSun))
	c.SetColor(graphics.RGB(glow, glow*0.8, glow*0.6))
	c.DrawSphere(orbit.SunTransform(ctx.T), orbit.SunRadius, false)
}

func (s *Sun) Dispose() {}

func (s *Sun) SetViewport(width, height int) {}
