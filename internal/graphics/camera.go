package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the perspective projection parameters
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       45.0,
		NearPlane: 0.1,
		FarPlane:  2000.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. A zero height (minimized window) keeps 1:1.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		c.AspectRatio = 1
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// OverlayProjection maps window pixels with the origin at the top-left, y down
func OverlayProjection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(width), float32(height), 0)
}
