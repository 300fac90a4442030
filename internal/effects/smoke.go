package effects

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	SmokeCap   = 100 // no emission while this many particles are alive
	SmokeBatch = 3   // particles per emission
)

// Particle is one puff of the cursor rocket's exhaust, in screen pixels.
// All rates are per tick, not per second.
type Particle struct {
	Position        mgl32.Vec2
	Velocity        mgl32.Vec2
	Lifetime        float32
	InitialLifetime float32
	Size            float32
	Color           colorful.Color
}

// NewParticle spawns a fiery particle near (x, y)
func NewParticle(rng *rand.Rand, x, y float32) Particle {
	life := uniform(rng, 30, 50)
	return Particle{
		Position:        mgl32.Vec2{x + uniform(rng, -3, 3), y + uniform(rng, -3, 3)},
		Velocity:        mgl32.Vec2{uniform(rng, -0.3, 0.3), uniform(rng, 2, 4)},
		Lifetime:        life,
		InitialLifetime: life,
		Size:            uniform(rng, 8, 18),
		Color:           colorful.Color{R: 1, G: float64(uniform(rng, 0.3, 0.6)), B: 0.1},
	}
}

// Step advances the particle by one tick: it drifts, shrinks and fades to grey
func (p *Particle) Step() {
	p.Position = p.Position.Add(p.Velocity)
	p.Lifetime--
	p.Size *= 0.97
	p.Color.G = math.Max(0.5, p.Color.G*0.98)
	p.Color.B = math.Max(0.5, p.Color.B*1.02)
}

// Dead reports whether the particle has burnt out
func (p Particle) Dead() bool {
	return p.Lifetime <= 0
}

// Alpha is the draw opacity, half of the remaining life fraction
func (p Particle) Alpha() float32 {
	if p.InitialLifetime <= 0 {
		return 0
	}
	return p.Lifetime / p.InitialLifetime * 0.5
}

// Smoke is the live particle list of the exhaust trail
type Smoke struct {
	Particles []Particle
}

// Emit appends a batch of particles at (x, y) unless the cap is reached
func (s *Smoke) Emit(rng *rand.Rand, x, y float32) {
	if len(s.Particles) >= SmokeCap {
		return
	}
	for i := 0; i < SmokeBatch; i++ {
		s.Particles = append(s.Particles, NewParticle(rng, x, y))
	}
}

// Step advances every particle and drops the dead ones, keeping the order of survivors
func (s *Smoke) Step() {
	alive := s.Particles[:0]
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Step()
		if !p.Dead() {
			alive = append(alive, *p)
		}
	}
	s.Particles = alive
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
