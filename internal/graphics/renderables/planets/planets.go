package planets

import (
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/orbit"
	"mini-orrery/internal/profiling"
)

// Planets implements the textured planets with their rings and moons
type Planets struct{}

// NewPlanets creates a new planets renderable
func NewPlanets() *Planets {
	return &Planets{}
}

func (p *Planets) Init() error { return nil }

func (p *Planets) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.planets")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	graphics.Modify(c, func(st *graphics.RenderState) {
		st.Texturing = true
		st.TexMode = graphics.TexModulate
	})
	c.SetColor(graphics.White)

	for _, b := range ctx.Scene.Planets {
		frame := orbit.PlanetFrame(b, ctx.T)

		c.BindTexture(ctx.Textures.Get(b.Texture))
		c.DrawSphere(orbit.SurfaceTransform(frame, orbit.PlanetSpinRate, ctx.T), b.Size, false)

		if b.Ringed {
			inner, outer := orbit.RingRadii(b)
			c.BindTexture(ctx.Textures.Get(graphics.TexSaturnRing))
			c.DrawDisk(orbit.RingTransform(frame, b), inner, outer)
		}

		for _, m := range b.Moons {
			mf := orbit.MoonFrame(frame, m, ctx.T)
			c.BindTexture(ctx.Textures.Get(m.Texture))
			c.DrawSphere(orbit.SurfaceTransform(mf, orbit.MoonSpinRate, ctx.T), m.Size, false)
		}
	}
}

func (p *Planets) Dispose() {}

func (p *Planets) SetViewport(width, height int) {}
