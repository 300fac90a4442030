package skybox

import (
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Radius of the star sphere around the origin
const Radius = 800

// Skybox implements the star background
type Skybox struct{}

// NewSkybox creates a new skybox renderable
func NewSkybox() *Skybox {
	return &Skybox{}
}

func (s *Skybox) Init() error { return nil }

// Render draws the inward-facing star sphere without touching the depth buffer
func (s *Skybox) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.skybox")()
	c := ctx.Canvas
	defer graphics.Scoped(c)()

	graphics.Modify(c, func(st *graphics.RenderState) {
		st.DepthWrite = false
		st.Texturing = true
		st.TexMode = graphics.TexReplace
	})
	c.BindTexture(ctx.Textures.Get(graphics.TexStars))
	c.SetColor(graphics.White)
	c.DrawSphere(mgl32.Ident4(), Radius, true)
}

func (s *Skybox) Dispose() {}

func (s *Skybox) SetViewport(width, height int) {}
