package scene

import (
	"fmt"
	"math/rand"
	"mini-orrery/internal/actor"
	"mini-orrery/internal/camera"
	"mini-orrery/internal/config"
	"mini-orrery/internal/effects"
	"mini-orrery/internal/input"
	"mini-orrery/internal/orbit"
	"mini-orrery/internal/profiling"
	"mini-orrery/internal/vehicle"
)

// SpriteSize is the edge of the cursor rocket sprite in pixels
const SpriteSize = 64

// Options configures a new scene
type Options struct {
	Width, Height int
	Asteroids     int
	UFOs          int
	Seed          int64
	// Planets defaults to orbit.DefaultPlanets when nil
	Planets []orbit.Body
}

// State owns every simulated object of the scene. Nothing here touches the
// graphics API; renderables read it after Update.
type State struct {
	Planets   []orbit.Body
	Asteroids []orbit.Asteroid
	UFOs      []*actor.UFO
	Smoke     effects.Smoke
	Stars     effects.ShootingStars
	Rocket    *vehicle.Rocket
	BlackHole vehicle.BlackHole
	Camera    *camera.Controller

	Width, Height int

	rng *rand.Rand
}

// Events reports what happened during one Update
type Events struct {
	ModeChanged     bool
	Mode            camera.Mode
	CollapseStarted bool
	Thrusting       bool
}

// New builds the scene: planets, asteroid belt, UFOs, rocket and black hole
func New(opts Options) (*State, error) {
	planets := opts.Planets
	if planets == nil {
		planets = orbit.DefaultPlanets()
	}
	if err := orbit.Validate(planets); err != nil {
		return nil, fmt.Errorf("scene planets: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := &State{
		Planets:   planets,
		Asteroids: orbit.NewBelt(rng, opts.Asteroids),
		Rocket:    vehicle.NewRocket(),
		BlackHole: vehicle.NewBlackHole(),
		Camera:    camera.NewController(),
		Width:     opts.Width,
		Height:    opts.Height,
		rng:       rng,
	}
	for i := 0; i < opts.UFOs; i++ {
		s.UFOs = append(s.UFOs, actor.NewUFO(rng))
	}
	return s, nil
}

// Mode returns the current camera mode
func (s *State) Mode() camera.Mode {
	return s.Camera.Mode()
}

// Update advances the scene by one frame. t is the time since start and dt
// the duration of the previous frame, both in seconds.
func (s *State) Update(t, dt float64, snap input.Snapshot, p input.Pointer) Events {
	defer profiling.Track("scene.Update")()

	var ev Events
	if snap.JustPressed(input.ActionChaseMode) && s.Camera.EnterChase(p) {
		ev.ModeChanged = true
	}
	if snap.JustPressed(input.ActionOverviewMode) && s.Camera.EnterOverview(p) {
		ev.ModeChanged = true
	}
	ev.Mode = s.Camera.Mode()

	if s.Camera.Mode() == camera.ModeChase {
		ev.CollapseStarted, ev.Thrusting = s.updateRocket(dt, snap)
		s.Camera.Recenter(p, s.Width, s.Height)
	}

	for _, u := range s.UFOs {
		u.Update(float32(dt))
	}

	s.Stars.MaybeSpawn(s.rng, float32(s.Width), float32(s.Height))
	s.Stars.Step()

	if s.Camera.Mode() == camera.ModeOverview {
		s.Camera.UpdateTilt(snap.MouseX, snap.MouseY)
		s.Smoke.Emit(s.rng, float32(snap.MouseX)+SpriteSize/2, float32(snap.MouseY)+SpriteSize)
	}
	s.Smoke.Step()

	return ev
}

func (s *State) updateRocket(dt float64, snap input.Snapshot) (collapsed, thrusting bool) {
	defer profiling.Track("scene.rocket")()

	r := s.Rocket
	if s.Camera.Focused() {
		r.UpdateOrientation(float32(snap.MouseDX), float32(snap.MouseDY), config.GetMouseSensitivity())
	}
	r.Update(float32(dt),
		snap.IsActive(input.ActionThrustForward),
		snap.IsActive(input.ActionThrustReverse))

	if s.BlackHole.Contains(r.Position) {
		collapsed = r.StartCollapse(s.BlackHole.Position)
	}
	thrusting = r.Thrust != 0 && !r.IsCollapsing()
	return collapsed, thrusting
}

// Resize records new window dimensions
func (s *State) Resize(width, height int) {
	s.Width, s.Height = width, height
}
