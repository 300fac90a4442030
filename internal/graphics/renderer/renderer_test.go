package renderer_test

import (
	"mini-orrery/internal/graphics"
	"mini-orrery/internal/graphics/graphicstest"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/graphics/renderables/asteroids"
	"mini-orrery/internal/graphics/renderables/blackhole"
	"mini-orrery/internal/graphics/renderables/hud"
	"mini-orrery/internal/graphics/renderables/orbits"
	"mini-orrery/internal/graphics/renderables/overlay"
	"mini-orrery/internal/graphics/renderables/planets"
	"mini-orrery/internal/graphics/renderables/rocket"
	"mini-orrery/internal/graphics/renderables/skybox"
	"mini-orrery/internal/graphics/renderables/sun"
	"mini-orrery/internal/graphics/renderables/ufos"
	"mini-orrery/internal/scene"
	"reflect"
	"testing"
)

type nopPointer struct{}

func (nopPointer) SetGrabbed(bool)              {}
func (nopPointer) SetCursorVisible(bool)        {}
func (nopPointer) SetPosition(x, y float64)     {}
func (nopPointer) Position() (float64, float64) { return 0, 0 }

type fixture struct {
	rec      *graphicstest.Recorder
	textures *graphics.TextureSet
	scene    *scene.State
	renderer *renderer.Renderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := graphicstest.NewRecorder()
	ts := graphics.NewTextureSet(rec, t.TempDir())
	for _, a := range graphics.SceneAssets {
		if _, err := ts.Register(a.Name, graphics.Placeholder()); err != nil {
			t.Fatalf("register %s: %v", a.Name, err)
		}
	}
	s, err := scene.New(scene.Options{Width: 800, Height: 600, Asteroids: 200, UFOs: 2, Seed: 7})
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	r, err := renderer.NewRenderer(800, 600, ts, allRenderables(ts)...)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return &fixture{rec: rec, textures: ts, scene: s, renderer: r}
}

func allRenderables(ts *graphics.TextureSet) []renderer.Renderable {
	return []renderer.Renderable{
		skybox.NewSkybox(),
		sun.NewSun(),
		orbits.NewOrbits(),
		asteroids.NewAsteroids(),
		ufos.NewUFOs(),
		blackhole.NewBlackHole(),
		rocket.NewRocket(),
		planets.NewPlanets(),
		overlay.NewOverlay(),
		hud.NewHUD(ts),
	}
}

// phase names the renderable a recorded draw came from
func (f *fixture) phase(d graphicstest.Draw) string {
	tex := func(name string) bool { return d.State.Texturing && d.Texture == f.textures.Get(name) }
	switch {
	case tex(graphics.TexStars):
		return "skybox"
	case tex(graphics.TexSun):
		return "sun"
	case tex(graphics.TexBlackHole):
		return "blackhole"
	case tex(graphics.TexRocket):
		return "cursor"
	case tex(graphics.TexFont):
		return "hud"
	case tex(graphics.TexPhobos) && d.Color == asteroids.Tint:
		return "asteroids"
	case d.Kind == graphicstest.Primitive && d.Primitive == graphics.LineLoop:
		return "orbits"
	case !d.State.DepthTest:
		return "overlay"
	case !d.State.Texturing:
		switch d.Color {
		case ufos.SaucerColor, ufos.DomeColor, ufos.UndersideColor:
			return "ufos"
		}
		return "rocket"
	default:
		return "planets"
	}
}

func (f *fixture) phases() []string {
	var out []string
	for _, d := range f.rec.Draws {
		p := f.phase(d)
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

func TestOverviewFrameOrder(t *testing.T) {
	f := newFixture(t)
	f.renderer.Render(f.rec, f.scene, 1.5, 1.0/60)

	if f.rec.Clears != 1 {
		t.Errorf("got %d clears", f.rec.Clears)
	}
	want := []string{"skybox", "sun", "orbits", "asteroids", "ufos", "planets", "cursor", "hud"}
	if got := f.phases(); !reflect.DeepEqual(got, want) {
		t.Errorf("draw order\n got %v\nwant %v", got, want)
	}

	sky := f.rec.Draws[0]
	if !sky.Inside || sky.State.DepthWrite || sky.State.TexMode != graphics.TexReplace || sky.Radius != skybox.Radius {
		t.Errorf("skybox drawn with %+v", sky.State)
	}
}

func TestChaseFrameOrder(t *testing.T) {
	f := newFixture(t)
	f.scene.Camera.EnterChase(nopPointer{})
	f.renderer.Render(f.rec, f.scene, 1.5, 1.0/60)

	want := []string{"skybox", "sun", "orbits", "asteroids", "ufos", "blackhole", "rocket", "planets", "hud"}
	if got := f.phases(); !reflect.DeepEqual(got, want) {
		t.Errorf("draw order\n got %v\nwant %v", got, want)
	}
}

func TestFrameDrawCounts(t *testing.T) {
	f := newFixture(t)
	f.renderer.Render(f.rec, f.scene, 0, 1.0/60)

	count := map[string]int{}
	for _, d := range f.rec.Draws {
		count[f.phase(d)]++
	}
	want := map[string]int{
		"skybox":    1,
		"sun":       1,
		"orbits":    len(orbits.Layers) * 8,
		"asteroids": 200,
		"ufos":      2 * 3,
		"planets":   8 + 1 + 3, // spheres, Saturn's ring, three moons
		"cursor":    1,
		"hud":       1,
	}
	if !reflect.DeepEqual(count, want) {
		t.Errorf("got %v\nwant %v", count, want)
	}
}

func TestFrameRestoresState(t *testing.T) {
	f := newFixture(t)
	f.scene.Camera.EnterChase(nopPointer{})
	f.renderer.Render(f.rec, f.scene, 3, 1.0/60)

	if f.rec.State() != graphics.DefaultState() {
		t.Errorf("state after frame %+v", f.rec.State())
	}
	if f.rec.Projection() != f.renderer.GetCamera().GetProjectionMatrix() {
		t.Errorf("projection not restored")
	}
	if f.rec.View() != f.scene.Camera.View(f.scene.Rocket) {
		t.Errorf("view not restored")
	}
}

func TestEachRenderableRestoresState(t *testing.T) {
	f := newFixture(t)
	f.scene.Camera.EnterChase(nopPointer{})
	proj := f.renderer.GetCamera().GetProjectionMatrix()
	view := f.scene.Camera.View(f.scene.Rocket)
	ctx := renderer.RenderContext{
		Canvas:   f.rec,
		Scene:    f.scene,
		Textures: f.textures,
		View:     view,
		Proj:     proj,
		T:        2,
		DT:       1.0 / 60,
		Width:    800,
		Height:   600,
	}

	for _, r := range allRenderables(f.textures) {
		if err := r.Init(); err != nil {
			t.Fatalf("%T init: %v", r, err)
		}
		f.rec.SetState(graphics.DefaultState())
		f.rec.SetProjection(proj)
		f.rec.SetView(view)

		r.Render(ctx)

		if f.rec.State() != graphics.DefaultState() || f.rec.Projection() != proj || f.rec.View() != view {
			t.Errorf("%T leaked state %+v", r, f.rec.State())
		}
		r.Dispose()
	}
}

func TestOverlayRunsUnderScreenProjection(t *testing.T) {
	f := newFixture(t)
	f.renderer.Render(f.rec, f.scene, 0, 1.0/60)

	ortho := graphics.OverlayProjection(800, 600)
	for _, d := range f.rec.Draws {
		switch f.phase(d) {
		case "cursor", "hud":
			if d.Projection != ortho || d.State.DepthTest {
				t.Errorf("%s drawn under %v", f.phase(d), d.Projection)
			}
		}
	}
}

func TestUpdateViewport(t *testing.T) {
	f := newFixture(t)
	f.renderer.UpdateViewport(1000, 500)
	if got := f.renderer.GetCamera().AspectRatio; got != 2 {
		t.Errorf("aspect %v", got)
	}
}
