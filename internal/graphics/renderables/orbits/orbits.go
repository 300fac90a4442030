package orbits

import (
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer is one pass of the glowing orbit lines
type Layer struct {
	Width float32
	Alpha float32
}

// Layers go from the wide faint halo to the thin bright core
var Layers = []Layer{
	{Width: 4, Alpha: 0.15},
	{Width: 2, Alpha: 0.3},
	{Width: 1, Alpha: 0.8},
}

// Grey is the colour of every orbit line before alpha
const Grey = 0.3

// Orbits implements the planet orbit circles
type Orbits struct{}

// NewOrbits creates a new orbits renderable
func NewOrbits() *Orbits {
	return &Orbits{}
}

func (o *Orbits) Init() error { return nil }

// Render draws each planet's orbit once per layer as a closed loop in the
// ecliptic plane
func (o *Orbits) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.orbits")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	graphics.Modify(c, func(st *graphics.RenderState) { st.Texturing = false })
	for _, l := range Layers {
		graphics.Modify(c, func(st *graphics.RenderState) { st.LineWidth = l.Width })
		color := mgl32.Vec4{Grey, Grey, Grey, l.Alpha}
		for _, p := range ctx.Scene.Planets {
			circle := graphics.Circle(p.Distance, graphics.OrbitSegments, color)
			c.DrawPrimitive(mgl32.Ident4(), graphics.LineLoop, circle)
		}
	}
}

func (o *Orbits) Dispose() {}

func (o *Orbits) SetViewport(width, height int) {}
