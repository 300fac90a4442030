package vehicle

import "github.com/go-gl/mathgl/mgl32"

// BlackHole is the fixed hazard of chase mode
type BlackHole struct {
	Position mgl32.Vec3
	Radius   float32
	// InfluenceRadius is kept for a future gravity well; nothing reads it yet.
	InfluenceRadius float32
}

// NewBlackHole returns the black hole far off to the side of the system
func NewBlackHole() BlackHole {
	return BlackHole{
		Position:        mgl32.Vec3{2000, 500, 0},
		Radius:          40,
		InfluenceRadius: 100,
	}
}

// Contains reports whether p is strictly inside the event horizon
func (b BlackHole) Contains(p mgl32.Vec3) bool {
	d := p.Sub(b.Position)
	return d.Dot(d) < b.Radius*b.Radius
}
