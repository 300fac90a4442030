package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PlanetOrbitScale = 10.0 // degrees per second per unit of orbital speed
	MoonOrbitScale   = 20.0
	PlanetSpinRate   = 50.0 // degrees per second of axial spin
	MoonSpinRate     = 30.0
	SunSpinRate      = 10.0
	SunRadius        = 100.0
)

// ErrNestedMoon is returned when a moon descriptor carries moons of its own
var ErrNestedMoon = errors.New("moons cannot have moons")

// Body is the static descriptor of a planet or moon. Moons reuse the same
// shape, but only one level of nesting is allowed.
type Body struct {
	Name     string
	Texture  string
	Distance float32 // from the parent's centre
	Size     float32 // sphere radius
	Speed    float32 // orbital angular speed (scaled by the orbit scale)
	Tilt     float32 // axial tilt in degrees
	Ringed   bool
	Moons    []Body
}

// Validate checks that no moon has moons of its own
func Validate(bodies []Body) error {
	for _, b := range bodies {
		for _, m := range b.Moons {
			if len(m.Moons) > 0 {
				return fmt.Errorf("%s/%s: %w", b.Name, m.Name, ErrNestedMoon)
			}
		}
	}
	return nil
}

// angle returns t*rate in degrees, reduced to [0,360) before narrowing so
// long runs keep float32 precision.
func angle(t, rate float64) float32 {
	return float32(math.Mod(t*rate, 360))
}

func rotY(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

// PlanetFrame returns the planet's orbit frame at time t: revolved about the
// sun's up axis and translated out along local X. Axial spin is not included.
func PlanetFrame(b Body, t float64) mgl32.Mat4 {
	return rotY(angle(t, float64(b.Speed)*PlanetOrbitScale)).
		Mul4(mgl32.Translate3D(b.Distance, 0, 0))
}

// MoonFrame nests a moon's orbit inside its parent's orbit frame
func MoonFrame(parent mgl32.Mat4, m Body, t float64) mgl32.Mat4 {
	return parent.
		Mul4(rotY(angle(t, float64(m.Speed)*MoonOrbitScale))).
		Mul4(mgl32.Translate3D(m.Distance, 0, 0))
}

// SurfaceTransform applies axial spin and turns the sphere's poles onto Y.
// It only affects the sphere it is applied to.
func SurfaceTransform(frame mgl32.Mat4, spinRate float64, t float64) mgl32.Mat4 {
	return frame.
		Mul4(rotY(angle(t, spinRate))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-90)))
}

// RingTransform lays a ring disk in the planet's equatorial plane
func RingTransform(frame mgl32.Mat4, b Body) mgl32.Mat4 {
	return frame.
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(b.Tilt))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-90)))
}

// RingRadii returns inner and outer radius of a ringed planet's disk
func RingRadii(b Body) (inner, outer float32) {
	return b.Size + 10, b.Size + 25
}

// SunTransform spins the sun about its own axis
func SunTransform(t float64) mgl32.Mat4 {
	return rotY(angle(t, SunSpinRate))
}

// SunGlow returns the pulsing brightness factor of the sun
func SunGlow(t float64) float32 {
	return float32(1.0 + math.Sin(t*2)*0.2)
}

// Position extracts the translation of a frame
func Position(frame mgl32.Mat4) mgl32.Vec3 {
	return frame.Col(3).Vec3()
}
