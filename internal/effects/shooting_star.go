package effects

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShootingStarCap    = 5
	ShootingStarChance = 0.015 // per tick
	shootingStarFade   = 0.01
	edgeMargin         = 10
)

// Edge is the screen border a shooting star enters from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// ShootingStar is a short-lived streak crossing the screen, in pixels
type ShootingStar struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Lifetime float32 // 1 at spawn, doubles as opacity
	Length   float32
	Width    float32 // screen size at spawn, used for culling
	Height   float32
}

// NewShootingStar spawns a star just outside a random edge of a w*h screen,
// heading inwards.
func NewShootingStar(rng *rand.Rand, w, h float32) ShootingStar {
	return NewShootingStarFrom(rng, Edge(rng.Intn(4)), w, h)
}

// NewShootingStarFrom spawns a star entering from the given edge
func NewShootingStarFrom(rng *rand.Rand, edge Edge, w, h float32) ShootingStar {
	s := ShootingStar{Lifetime: 1, Width: w, Height: h}
	switch edge {
	case EdgeTop:
		s.Position = mgl32.Vec2{uniform(rng, 0, w), -edgeMargin}
		s.Velocity = mgl32.Vec2{uniform(rng, -4, 4), uniform(rng, 5, 15)}
	case EdgeBottom:
		s.Position = mgl32.Vec2{uniform(rng, 0, w), h + edgeMargin}
		s.Velocity = mgl32.Vec2{uniform(rng, -4, 4), uniform(rng, -15, -5)}
	case EdgeLeft:
		s.Position = mgl32.Vec2{-edgeMargin, uniform(rng, 0, h)}
		s.Velocity = mgl32.Vec2{uniform(rng, 5, 15), uniform(rng, -4, 4)}
	default:
		s.Position = mgl32.Vec2{w + edgeMargin, uniform(rng, 0, h)}
		s.Velocity = mgl32.Vec2{uniform(rng, -15, -5), uniform(rng, -4, 4)}
	}
	s.Length = uniform(rng, 50, 150)
	return s
}

// Step moves the star one tick and fades it
func (s *ShootingStar) Step() {
	s.Position = s.Position.Add(s.Velocity)
	s.Lifetime -= shootingStarFade
}

// IsDead reports whether the star has faded or left the padded screen rectangle
func (s ShootingStar) IsDead() bool {
	x, y := s.Position.X(), s.Position.Y()
	return s.Lifetime <= 0 ||
		x < -s.Length || x > s.Width+s.Length ||
		y < -s.Length || y > s.Height+s.Length
}

// Tail returns the far end of the streak
func (s ShootingStar) Tail() mgl32.Vec2 {
	return s.Position.Sub(s.Velocity.Mul(s.Length / 20))
}

// Alpha is the streak opacity
func (s ShootingStar) Alpha() float32 {
	return s.Lifetime * 0.8
}

// ShootingStars is the live set of streaks
type ShootingStars struct {
	Stars []ShootingStar
}

// MaybeSpawn rolls the per-tick spawn chance and adds a star when under the cap.
// It reports whether a star was added.
func (ss *ShootingStars) MaybeSpawn(rng *rand.Rand, w, h float32) bool {
	if rng.Float64() >= ShootingStarChance {
		return false
	}
	if len(ss.Stars) >= ShootingStarCap {
		return false
	}
	ss.Stars = append(ss.Stars, NewShootingStar(rng, w, h))
	return true
}

// Step advances all stars and culls the dead ones
func (ss *ShootingStars) Step() {
	alive := ss.Stars[:0]
	for i := range ss.Stars {
		s := &ss.Stars[i]
		s.Step()
		if !s.IsDead() {
			alive = append(alive, *s)
		}
	}
	ss.Stars = alive
}
