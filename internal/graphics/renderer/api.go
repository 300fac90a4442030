package renderer

import (
	"mini-orrery/internal/graphics"
	"mini-orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Canvas   graphics.Canvas
	Scene    *scene.State
	Textures *graphics.TextureSet
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	T        float64 // seconds since start
	DT       float64
	Width    int
	Height   int
}

// Renderable interface defines the lifecycle for renderable features.
// Render must leave the canvas state, projection and view as it found them.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
