package orbit

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func vecApprox(a, b mgl32.Vec3, eps float32) bool {
	return approx(a.X(), b.X(), eps) && approx(a.Y(), b.Y(), eps) && approx(a.Z(), b.Z(), eps)
}

func TestPlanetFrameAtZero(t *testing.T) {
	for _, b := range DefaultPlanets() {
		got := Position(PlanetFrame(b, 0))
		want := mgl32.Vec3{b.Distance, 0, 0}
		if !vecApprox(got, want, 1e-4) {
			t.Errorf("%s at t=0: got %v, want %v", b.Name, got, want)
		}
	}
}

func TestPlanetFrameQuarterTurn(t *testing.T) {
	// Earth: speed 0.5 -> 5 deg/s, so 18s is a quarter turn.
	earth := DefaultPlanets()[2]
	got := Position(PlanetFrame(earth, 18))
	want := mgl32.Vec3{0, 0, -earth.Distance}
	if !vecApprox(got, want, 1e-3) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPlanetStaysOnOrbit(t *testing.T) {
	for _, b := range DefaultPlanets() {
		for _, tm := range []float64{0.3, 12, 1000, 1e6} {
			p := Position(PlanetFrame(b, tm))
			if !approx(p.Len(), b.Distance, 1e-2) {
				t.Errorf("%s t=%v: radius %v, want %v", b.Name, tm, p.Len(), b.Distance)
			}
			if !approx(p.Y(), 0, 1e-3) {
				t.Errorf("%s t=%v: left the ecliptic, y=%v", b.Name, tm, p.Y())
			}
		}
	}
}

func TestMoonFrameIgnoresParentSpin(t *testing.T) {
	earth := DefaultPlanets()[2]
	moon := earth.Moons[0]
	for _, tm := range []float64{0, 1.5, 40} {
		pf := PlanetFrame(earth, tm)
		mf := MoonFrame(pf, moon, tm)
		d := Position(mf).Sub(Position(pf))
		if !approx(d.Len(), moon.Distance, 1e-3) {
			t.Errorf("t=%v: moon distance %v, want %v", tm, d.Len(), moon.Distance)
		}
	}
}

func TestSurfaceTransformKeepsFramePosition(t *testing.T) {
	b := DefaultPlanets()[4]
	frame := PlanetFrame(b, 7)
	surface := SurfaceTransform(frame, PlanetSpinRate, 7)
	if !vecApprox(Position(surface), Position(frame), 1e-4) {
		t.Errorf("spin moved the planet: %v vs %v", Position(surface), Position(frame))
	}
}

func TestRingRadii(t *testing.T) {
	saturn := DefaultPlanets()[5]
	if !saturn.Ringed {
		t.Fatalf("expected Saturn to be ringed")
	}
	in, out := RingRadii(saturn)
	if in != 45 || out != 60 {
		t.Errorf("got (%v,%v), want (45,60)", in, out)
	}
}

func TestSunGlowRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		g := SunGlow(float64(i) * 0.1)
		if g < 0.8-1e-6 || g > 1.2+1e-6 {
			t.Fatalf("glow %v out of [0.8,1.2]", g)
		}
	}
}

func TestValidateRejectsNestedMoons(t *testing.T) {
	if err := Validate(DefaultPlanets()); err != nil {
		t.Fatalf("default planets invalid: %v", err)
	}
	bad := []Body{{Name: "P", Moons: []Body{{Name: "M", Moons: []Body{{Name: "MM"}}}}}}
	if err := Validate(bad); !errors.Is(err, ErrNestedMoon) {
		t.Errorf("got %v, want ErrNestedMoon", err)
	}
}

func TestNewBeltCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{-3, 0, 1, 200} {
		belt := NewBelt(rng, n)
		want := n
		if want < 0 {
			want = 0
		}
		if len(belt) != want {
			t.Errorf("NewBelt(%d): got %d asteroids", n, len(belt))
		}
	}
}

func TestAsteroidRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, a := range NewBelt(rng, 500) {
		if a.Radius < BeltInnerRadius || a.Radius > BeltOuterRadius {
			t.Fatalf("radius %v out of belt", a.Radius)
		}
		if a.Y < -BeltThickness || a.Y > BeltThickness {
			t.Fatalf("y %v out of range", a.Y)
		}
		if a.Size < 0.5 || a.Size > 3.5 {
			t.Fatalf("size %v out of range", a.Size)
		}
		if a.SpinRate < -40 || a.SpinRate > 40 {
			t.Fatalf("spin %v out of range", a.SpinRate)
		}
		if !approx(a.SpinAxis.Len(), 1, 1e-4) {
			t.Fatalf("spin axis not unit: %v", a.SpinAxis)
		}
		lo := float32(0.2 * BeltOuterRadius / float64(a.Radius))
		hi := float32(0.35 * BeltOuterRadius / float64(a.Radius))
		if a.Speed < lo-1e-5 || a.Speed > hi+1e-5 {
			t.Fatalf("speed %v outside [%v,%v]", a.Speed, lo, hi)
		}
	}
}

func TestAsteroidPositionIsPure(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAsteroid(rng)
	p0 := a.Position(0)
	if !vecApprox(p0, mgl32.Vec3{a.X, a.Y, a.Z}, 1e-4) {
		t.Errorf("t=0: got %v, want initial position", p0)
	}
	if a.Position(123.4) != a.Position(123.4) {
		t.Errorf("same t gave different positions")
	}
	for _, tm := range []float64{1, 50, 5000} {
		p := a.Position(tm)
		if p.Y() != a.Y {
			t.Errorf("y changed: %v", p.Y())
		}
		r := float32(math.Hypot(float64(p.X()), float64(p.Z())))
		if !approx(r, a.Radius, 1e-2) {
			t.Errorf("t=%v: radius %v, want %v", tm, r, a.Radius)
		}
	}
}

func TestAsteroidTransformTranslation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := NewAsteroid(rng)
	got := Position(a.Transform(3))
	if !vecApprox(got, a.Position(3), 1e-4) {
		t.Errorf("got %v, want %v", got, a.Position(3))
	}
}
