package overlay

import (
	"math/rand"
	"mini-orrery/internal/effects"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStarLines(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	stars := []effects.ShootingStar{
		effects.NewShootingStarFrom(rng, effects.EdgeTop, 800, 600),
		effects.NewShootingStarFrom(rng, effects.EdgeLeft, 800, 600),
	}
	verts := StarLines(stars)
	if len(verts) != 4 {
		t.Fatalf("got %d vertices", len(verts))
	}
	for i, s := range stars {
		head, tail := verts[i*2], verts[i*2+1]
		if head.Pos != s.Position.Vec3(0) || tail.Pos != s.Tail().Vec3(0) {
			t.Errorf("star %d segment %v -> %v", i, head.Pos, tail.Pos)
		}
		if head.Color.W() != s.Alpha() || head.Color.Vec3() != StarColor {
			t.Errorf("star %d colour %v", i, head.Color)
		}
	}
}

func TestSmokeQuadsClampColour(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := effects.NewParticle(rng, 100, 200)
	p.Color.B = 1.4
	verts := SmokeQuads([]effects.Particle{p})
	if len(verts) != 4 {
		t.Fatalf("got %d vertices", len(verts))
	}
	c := verts[0].Color
	if c.Z() != 1 {
		t.Errorf("blue not clamped: %v", c)
	}
	if c.W() != p.Alpha() {
		t.Errorf("alpha %v, want %v", c.W(), p.Alpha())
	}
	centre := verts[0].Pos.Add(verts[2].Pos).Mul(0.5)
	if !centre.ApproxEqual(p.Position.Vec3(0)) {
		t.Errorf("quad centred at %v, particle at %v", centre, p.Position)
	}
	if side := verts[1].Pos.X() - verts[0].Pos.X(); !mgl32.FloatEqualThreshold(side, p.Size, 1e-4) {
		t.Errorf("side %v, size %v", side, p.Size)
	}
}

func TestCursorSpriteFlipped(t *testing.T) {
	verts := CursorSprite(64)
	// top-left on screen shows the top row of the texture
	if verts[0].Pos != (mgl32.Vec3{-32, -32, 0}) || verts[0].UV != (mgl32.Vec2{0, 1}) {
		t.Errorf("top-left %+v", verts[0])
	}
	if verts[2].Pos != (mgl32.Vec3{32, 32, 0}) || verts[2].UV != (mgl32.Vec2{1, 0}) {
		t.Errorf("bottom-right %+v", verts[2])
	}
}
