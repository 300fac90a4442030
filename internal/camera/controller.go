package camera

import (
	"mini-orrery/internal/input"
	"mini-orrery/internal/vehicle"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how the scene is viewed
type Mode int

const (
	// ModeOverview looks at the whole system from a fixed point
	ModeOverview Mode = iota
	// ModeChase follows the rocket from behind
	ModeChase
)

func (m Mode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "overview"
}

const (
	OverviewDistance = 1200.0
	OverviewPitch    = 25.0 // degrees
	ChaseDistance    = 50.0
	ChaseHeight      = 15.0
	ChaseLead        = 20.0

	TiltGain   = 1.5
	MaxTilt    = 25.0 // degrees
	TiltEasing = 0.1
)

// Controller owns the view mode, pointer focus and the cursor sprite tilt.
// It never touches the rocket's state.
type Controller struct {
	mode    Mode
	focused bool

	// last cursor position seen by the tilt tracker
	lastX, lastY float64
	tilt         float32
}

// NewController starts in overview with the pointer free
func NewController() *Controller {
	return &Controller{mode: ModeOverview}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Focused reports whether the pointer is grabbed for steering
func (c *Controller) Focused() bool {
	return c.focused
}

// Tilt returns the cursor sprite rotation in degrees
func (c *Controller) Tilt() float32 {
	return c.tilt
}

// EnterChase grabs and hides the pointer. It reports whether the mode changed.
func (c *Controller) EnterChase(p input.Pointer) bool {
	if c.mode == ModeChase {
		return false
	}
	c.mode = ModeChase
	c.focused = true
	p.SetGrabbed(true)
	p.SetCursorVisible(false)
	return true
}

// EnterOverview releases the pointer. The OS cursor is shown and hidden again
// so the sprite cursor reappears, and the tilt tracker is resynced to avoid a
// jump. It reports whether the mode changed.
func (c *Controller) EnterOverview(p input.Pointer) bool {
	if c.mode == ModeOverview {
		return false
	}
	c.mode = ModeOverview
	c.focused = false
	p.SetGrabbed(false)
	p.SetCursorVisible(true)
	p.SetCursorVisible(false)
	c.lastX, c.lastY = p.Position()
	return true
}

// View returns the view matrix for the current mode
func (c *Controller) View(r *vehicle.Rocket) mgl32.Mat4 {
	if c.mode == ModeChase {
		return ChaseView(r.Position, r.Forward)
	}
	return OverviewView()
}

// OverviewView is the fixed view of the whole system
func OverviewView() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -OverviewDistance).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(OverviewPitch)))
}

// ChaseView looks past the rocket from behind and slightly above it
func ChaseView(pos, forward mgl32.Vec3) mgl32.Mat4 {
	eye := pos.Sub(forward.Mul(ChaseDistance)).Add(mgl32.Vec3{0, ChaseHeight, 0})
	target := pos.Add(forward.Mul(ChaseLead))
	return mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
}

// Recenter warps a focused pointer to the middle of a w*h window so it never
// hits the screen edge. The warp carries no relative motion.
func (c *Controller) Recenter(p input.Pointer, w, h int) {
	if !c.focused {
		return
	}
	p.SetPosition(float64(w)/2, float64(h)/2)
}

// Cursor returns the pointer position last seen by the tilt tracker
func (c *Controller) Cursor() (x, y float64) {
	return c.lastX, c.lastY
}

// UpdateTilt eases the sprite tilt towards the horizontal cursor speed
func (c *Controller) UpdateTilt(mouseX, mouseY float64) {
	dx := float32(mouseX - c.lastX)
	c.lastX, c.lastY = mouseX, mouseY

	target := mgl32.Clamp(dx*TiltGain, -MaxTilt, MaxTilt)
	c.tilt += (target - c.tilt) * TiltEasing
}
