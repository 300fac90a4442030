package asteroids

import (
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Tint darkens the rock texture and lets the skybox show through a little
var Tint = mgl32.Vec4{0.3, 0.3, 0.3, 0.8}

// Asteroids implements the asteroid belt
type Asteroids struct{}

// NewAsteroids creates a new asteroid belt renderable
func NewAsteroids() *Asteroids {
	return &Asteroids{}
}

func (a *Asteroids) Init() error { return nil }

func (a *Asteroids) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.asteroids")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	graphics.Modify(c, func(st *graphics.RenderState) {
		st.Texturing = true
		st.TexMode = graphics.TexModulate
	})
	c.BindTexture(ctx.Textures.Get(graphics.TexPhobos))
	c.SetColor(Tint)
	for _, rock := range ctx.Scene.Asteroids {
		c.DrawSphere(rock.Transform(ctx.T), rock.Size, false)
	}
}

func (a *Asteroids) Dispose() {}

func (a *Asteroids) SetViewport(width, height int) {}
