package orbit

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	BeltInnerRadius    = 280.0
	BeltOuterRadius    = 340.0
	BeltThickness      = 15.0
	AsteroidOrbitScale = 10.0
)

// Asteroid is one rock of the belt. Its position is re-derived from t every
// frame, so nothing here changes after creation.
type Asteroid struct {
	X, Y, Z  float32 // position at t = 0
	Radius   float32
	Size     float32
	Speed    float32
	SpinAxis mgl32.Vec3
	SpinRate float32 // degrees per second
}

// NewAsteroid places a rock at a random point of the belt. Outer rocks orbit
// slower (speed scaled by outer/radius).
func NewAsteroid(rng *rand.Rand) Asteroid {
	theta := rng.Float64() * 2 * math.Pi
	radius := uniform(rng, BeltInnerRadius, BeltOuterRadius)

	axis := mgl32.Vec3{
		float32(uniform(rng, -1, 1)),
		float32(uniform(rng, -1, 1)),
		float32(uniform(rng, -1, 1)),
	}
	if axis.Len() < 1e-6 {
		axis = mgl32.Vec3{0, 1, 0}
	}

	return Asteroid{
		X:        float32(radius * math.Cos(theta)),
		Y:        float32(uniform(rng, -BeltThickness, BeltThickness)),
		Z:        float32(radius * math.Sin(theta)),
		Radius:   float32(radius),
		Size:     float32(uniform(rng, 0.5, 3.5)),
		Speed:    float32(uniform(rng, 0.2, 0.35) * (BeltOuterRadius / radius)),
		SpinAxis: axis.Normalize(),
		SpinRate: float32(uniform(rng, -40, 40)),
	}
}

// NewBelt creates exactly n asteroids (none for n <= 0)
func NewBelt(rng *rand.Rand, n int) []Asteroid {
	if n <= 0 {
		return []Asteroid{}
	}
	belt := make([]Asteroid, n)
	for i := range belt {
		belt[i] = NewAsteroid(rng)
	}
	return belt
}

// Position returns where the asteroid is at time t. The initial (x,z) is
// rotated in closed form, so the same t always gives the same point.
func (a Asteroid) Position(t float64) mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(angle(t, float64(a.Speed)*AsteroidOrbitScale)))
	c, s := math.Cos(rad), math.Sin(rad)
	x, z := float64(a.X), float64(a.Z)
	return mgl32.Vec3{
		float32(x*c - z*s),
		a.Y,
		float32(x*s + z*c),
	}
}

// Transform returns the asteroid's model matrix at time t, including its tumble
func (a Asteroid) Transform(t float64) mgl32.Mat4 {
	p := a.Position(t)
	spin := mgl32.DegToRad(float32(math.Mod(t*float64(a.SpinRate), 360)))
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.HomogRotate3D(spin, a.SpinAxis))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
