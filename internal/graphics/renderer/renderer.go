package renderer

import (
	"mini-orrery/internal/graphics"
	"mini-orrery/internal/profiling"
	"mini-orrery/internal/scene"
)

// Renderer orchestrates rendering via renderable features, in registration order
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	textures    *graphics.TextureSet
	width       int
	height      int
}

// NewRenderer creates a renderer and initializes the given renderables
func NewRenderer(width, height int, textures *graphics.TextureSet, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
		textures:    textures,
	}

	for _, rend := range rs {
		if err := rend.Init(); err != nil {
			return nil, err
		}
	}
	r.UpdateViewport(width, height)

	return r, nil
}

// Render draws one frame of the scene onto c
func (r *Renderer) Render(c graphics.Canvas, s *scene.State, t, dt float64) {
	defer profiling.Track("renderer.Render")()

	c.SetState(graphics.DefaultState())
	c.Clear()

	proj := r.camera.GetProjectionMatrix()
	view := s.Camera.View(s.Rocket)
	c.SetProjection(proj)
	c.SetView(view)

	ctx := RenderContext{
		Canvas:   c,
		Scene:    s,
		Textures: r.textures,
		View:     view,
		Proj:     proj,
		T:        t,
		DT:       dt,
		Width:    r.width,
		Height:   r.height,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the projection and every renderable's viewport
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	r.camera.SetViewport(width, height)
	for _, rend := range r.renderables {
		rend.SetViewport(width, height)
	}
}
