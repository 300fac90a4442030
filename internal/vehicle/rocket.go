package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ForwardThrust  = 150.0
	ReverseThrust  = -100.0
	Drag           = 0.98 // velocity kept per update
	DefaultSize    = 20.0
	CollapseTime   = 2.0 // seconds until respawn
	CollapseShrink = 0.90
	CollapsePull   = 3.0
	MaxPitch       = 0.8 // bound on forward.y
)

// Rocket is the player-controlled craft of chase mode
type Rocket struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Forward  mgl32.Vec3 // pointing direction, not kept normalized
	Size     float32
	Thrust   float32

	collapsing    bool
	collapseTimer float32
	center        mgl32.Vec3
	spawn         mgl32.Vec3
}

// NewRocket returns a rocket parked at the spawn point in front of the sun
func NewRocket() *Rocket {
	r := &Rocket{spawn: mgl32.Vec3{0, 0, 300}}
	r.Reset()
	return r
}

// IsCollapsing reports whether the rocket is being swallowed
func (r *Rocket) IsCollapsing() bool {
	return r.collapsing
}

// Update advances the rocket by dt seconds. Reverse wins when both keys are held.
func (r *Rocket) Update(dt float32, forward, reverse bool) {
	r.Thrust = 0
	if forward {
		r.Thrust = ForwardThrust
	}
	if reverse {
		r.Thrust = ReverseThrust
	}

	if r.collapsing {
		r.updateCollapse(dt)
		return
	}

	r.Velocity = r.Velocity.Add(r.Forward.Mul(r.Thrust * dt))
	r.Velocity = r.Velocity.Mul(Drag)
	r.Position = r.Position.Add(r.Velocity.Mul(dt))
}

func (r *Rocket) updateCollapse(dt float32) {
	r.Size *= CollapseShrink
	r.collapseTimer -= dt

	// Follow the pull but stop at the centre rather than fly through it.
	step := r.Velocity.Mul(dt)
	toCenter := r.center.Sub(r.Position)
	if step.Len() >= toCenter.Len() {
		r.Position = r.center
		r.Velocity = mgl32.Vec3{}
	} else {
		r.Position = r.Position.Add(step)
	}

	if r.collapseTimer <= 0 {
		r.Reset()
	}
}

// StartCollapse begins the collapse towards center. It returns false when
// a collapse is already running.
func (r *Rocket) StartCollapse(center mgl32.Vec3) bool {
	if r.collapsing {
		return false
	}
	r.collapsing = true
	r.collapseTimer = CollapseTime
	r.center = center
	r.Velocity = center.Sub(r.Position).Mul(CollapsePull)
	return true
}

// Reset puts the rocket back at its spawn point
func (r *Rocket) Reset() {
	r.Position = r.spawn
	r.Velocity = mgl32.Vec3{}
	r.Forward = mgl32.Vec3{0, 0, -1}
	r.Size = DefaultSize
	r.Thrust = 0
	r.collapsing = false
	r.collapseTimer = 0
	r.center = mgl32.Vec3{}
}

// UpdateOrientation yaws the forward vector about Y and nudges its Y
// component for pitch. sens is radians per pixel.
func (r *Rocket) UpdateOrientation(dx, dy, sens float32) {
	yaw := float64(-dx * sens)
	pitch := -dy * sens

	c, s := math.Cos(yaw), math.Sin(yaw)
	x, z := float64(r.Forward.X()), float64(r.Forward.Z())
	r.Forward[0] = float32(x*c - z*s)
	r.Forward[2] = float32(x*s + z*c)

	r.Forward[1] = mgl32.Clamp(r.Forward[1]+pitch, -MaxPitch, MaxPitch)
}

// YawPitch returns the model orientation in degrees: yaw about Y then pitch about X
func (r *Rocket) YawPitch() (yaw, pitch float32) {
	f := r.Forward
	yaw = mgl32.RadToDeg(float32(math.Atan2(float64(f.X()), float64(f.Z()))))
	pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(-f.Y(), -1, 1)))))
	return yaw, pitch
}

// Transform returns the model matrix of the rocket, its length along local +Z
func (r *Rocket) Transform() mgl32.Mat4 {
	yaw, pitch := r.YawPitch()
	return mgl32.Translate3D(r.Position.X(), r.Position.Y(), r.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)))
}

// Speed is the magnitude of the rocket's velocity
func (r *Rocket) Speed() float32 {
	return r.Velocity.Len()
}
