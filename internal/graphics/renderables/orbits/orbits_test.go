package orbits

import (
	"mini-orrery/internal/graphics"
	"mini-orrery/internal/graphics/graphicstest"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/scene"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRenderLayersEveryOrbit(t *testing.T) {
	s, err := scene.New(scene.Options{Width: 800, Height: 600, Seed: 1})
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	rec := graphicstest.NewRecorder()
	NewOrbits().Render(renderer.RenderContext{Canvas: rec, Scene: s, Width: 800, Height: 600})

	n := len(s.Planets)
	if len(rec.Draws) != len(Layers)*n {
		t.Fatalf("got %d draws, want %d", len(rec.Draws), len(Layers)*n)
	}
	for i, d := range rec.Draws {
		l := Layers[i/n]
		p := s.Planets[i%n]
		if d.Primitive != graphics.LineLoop || d.State.Texturing {
			t.Errorf("draw %d: %v textured=%v", i, d.Primitive, d.State.Texturing)
		}
		if d.State.LineWidth != l.Width || d.Vertices[0].Color.W() != l.Alpha {
			t.Errorf("draw %d: width %v alpha %v, want %+v", i, d.State.LineWidth, d.Vertices[0].Color.W(), l)
		}
		if r := d.Vertices[0].Pos.Len(); !mgl32.FloatEqualThreshold(r, p.Distance, 1e-3) {
			t.Errorf("draw %d: radius %v, want %v", i, r, p.Distance)
		}
	}
	if rec.State() != graphics.DefaultState() {
		t.Errorf("state leaked %+v", rec.State())
	}
}

func TestLayersWidenAsTheyFade(t *testing.T) {
	for i := 1; i < len(Layers); i++ {
		if Layers[i].Width >= Layers[i-1].Width || Layers[i].Alpha <= Layers[i-1].Alpha {
			t.Errorf("layer %d %+v after %+v", i, Layers[i], Layers[i-1])
		}
	}
}
