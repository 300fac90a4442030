package actor

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	UFOSize     = 15.0
	UFOBoundary = 1000.0 // any coordinate beyond this triggers a reset
	minDirLen   = 1e-6
)

// UFO drifts in a straight line across the scene and re-spawns once it
// leaves the bounding box.
type UFO struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Size     float32
	SpinRate float32 // degrees per second about Y

	rng *rand.Rand
}

// NewUFO creates a UFO already placed on its first pass
func NewUFO(rng *rand.Rand) *UFO {
	u := &UFO{
		Size:     UFOSize,
		SpinRate: uniform(rng, 20, 50),
		rng:      rng,
	}
	u.Reset()
	return u
}

// Update integrates position and resets the UFO when it strays too far
func (u *UFO) Update(dt float32) {
	u.Position = u.Position.Add(u.Velocity.Mul(dt))
	for i := 0; i < 3; i++ {
		if float32(math.Abs(float64(u.Position[i]))) > UFOBoundary {
			u.Reset()
			return
		}
	}
}

// Reset picks a new start in the outer box and aims it at a point near the centre
func (u *UFO) Reset() {
	u.Position = mgl32.Vec3{
		uniform(u.rng, -800, 800),
		uniform(u.rng, -300, 300),
		uniform(u.rng, -800, 800),
	}
	target := mgl32.Vec3{uniform(u.rng, -200, 200), 0, uniform(u.rng, -200, 200)}
	speed := uniform(u.rng, 40, 80)
	u.Velocity = heading(u.Position, target).Mul(speed)
}

// Transform returns the model matrix of the UFO at time t
func (u *UFO) Transform(t float64) mgl32.Mat4 {
	spin := mgl32.DegToRad(float32(math.Mod(t*float64(u.SpinRate), 360)))
	return mgl32.Translate3D(u.Position.X(), u.Position.Y(), u.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(spin))
}

// heading returns the unit direction from pos to target. When the two
// coincide it heads for the origin instead, and along +X if pos is the origin.
func heading(pos, target mgl32.Vec3) mgl32.Vec3 {
	for _, d := range []mgl32.Vec3{target.Sub(pos), pos.Mul(-1)} {
		if d.Len() >= minDirLen {
			return d.Normalize()
		}
	}
	return mgl32.Vec3{1, 0, 0}
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
