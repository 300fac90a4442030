package actor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewUFOInitialState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		u := NewUFO(rng)
		if u.Size != UFOSize {
			t.Fatalf("size %v", u.Size)
		}
		if u.SpinRate < 20 || u.SpinRate > 50 {
			t.Fatalf("spin %v", u.SpinRate)
		}
		checkSpawn(t, u)
	}
}

func checkSpawn(t *testing.T, u *UFO) {
	t.Helper()
	p := u.Position
	if p.X() < -800 || p.X() > 800 || p.Y() < -300 || p.Y() > 300 || p.Z() < -800 || p.Z() > 800 {
		t.Fatalf("spawn %v outside box", p)
	}
	speed := u.Velocity.Len()
	if speed < 40-1e-3 || speed > 80+1e-3 {
		t.Fatalf("speed %v outside [40,80]", speed)
	}
}

func TestResetAimsAtCentralRegion(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	u := NewUFO(rng)
	for i := 0; i < 2000; i++ {
		u.Reset()
		p, v := u.Position, u.Velocity
		if math.Abs(float64(p.Y())) < 1e-3 {
			continue
		}
		// where the flight line crosses the y=0 plane
		k := -p.Y() / v.Y()
		if k <= 0 {
			t.Fatalf("heading away from y=0: pos %v vel %v", p, v)
		}
		hit := p.Add(v.Mul(k))
		if math.Abs(float64(hit.X())) > 200.05 || math.Abs(float64(hit.Z())) > 200.05 {
			t.Fatalf("pos %v vel %v crosses y=0 at %v", p, v, hit)
		}
	}
}

func TestUpdateMovesLinearly(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	u := NewUFO(rng)
	u.Position = mgl32.Vec3{0, 0, 0}
	u.Velocity = mgl32.Vec3{10, -5, 2}
	u.Update(0.5)
	if u.Position != (mgl32.Vec3{5, -2.5, 1}) {
		t.Errorf("got %v", u.Position)
	}
}

func TestUpdateResetsOutOfBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	u := NewUFO(rng)
	u.Position = mgl32.Vec3{999, 0, 0}
	u.Velocity = mgl32.Vec3{0, 0, 0}
	u.Update(1)
	if u.Position.X() != 999 {
		t.Fatalf("reset while inside the box")
	}
	u.Velocity = mgl32.Vec3{10, 0, 0}
	u.Update(1)
	checkSpawn(t, u)
}

func TestHeadingGuards(t *testing.T) {
	cases := []struct {
		name        string
		pos, target mgl32.Vec3
		want        mgl32.Vec3
	}{
		{"normal", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}},
		{"coincident", mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, -1, 0}},
		{"origin", mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}},
	}
	for _, c := range cases {
		got := heading(c.pos, c.target)
		for i := 0; i < 3; i++ {
			if math.IsNaN(float64(got[i])) || math.Abs(float64(got[i]-c.want[i])) > 1e-6 {
				t.Errorf("%s: got %v, want %v", c.name, got, c.want)
				break
			}
		}
	}
}

func TestTransformTranslation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	u := NewUFO(rng)
	m := u.Transform(12.5)
	if m.Col(3).Vec3() != u.Position {
		t.Errorf("translation %v, want %v", m.Col(3).Vec3(), u.Position)
	}
}
