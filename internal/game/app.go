package game

import (
	"log"
	"mini-orrery/internal/config"
	"mini-orrery/internal/graphics"
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/input"
	"mini-orrery/internal/profiling"
	"mini-orrery/internal/scene"
	"time"
)

// Window is the part of the platform window the loop drives.
// *glfw.Window satisfies it.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
}

// Sounds receives the audible events of a frame
type Sounds interface {
	SetThrust(on bool)
	PlayCollapse()
	PlayModeSwitch()
}

type viewporter interface {
	SetViewport(width, height int)
}

// Deps are the collaborators the loop runs with
type Deps struct {
	Window   Window
	Poll     func() // pumps window events into Input
	Canvas   graphics.Canvas
	Pointer  input.Pointer
	Input    *input.Manager
	Scene    *scene.State
	Renderer *renderer.Renderer
	Sounds   Sounds
}

// App runs the frame loop: poll, update, draw, present, throttle
type App struct {
	Deps

	fpsLimiter *FPSLimiter
	clock      func() time.Time
	start      time.Time
	lastTime   time.Time
}

func NewApp(d Deps) *App {
	now := time.Now()
	return &App{
		Deps:       d,
		fpsLimiter: NewFPSLimiter(),
		clock:      time.Now,
		start:      now,
		lastTime:   now,
	}
}

func (a *App) Run() {
	for !a.Window.ShouldClose() {
		a.tick()
	}
	if a.Sounds != nil {
		a.Sounds.SetThrust(false)
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := a.clock()
	dt := now.Sub(a.lastTime).Seconds()
	t := now.Sub(a.start).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); a.Poll() }()

	snap := a.Input.Snapshot()
	if snap.JustPressed(input.ActionQuit) {
		a.Window.SetShouldClose(true)
	}
	if snap.JustPressed(input.ActionToggleHUD) {
		config.ToggleHUD()
	}

	ev := a.Scene.Update(t, dt, snap, a.Pointer)
	a.playSounds(ev)

	a.Renderer.Render(a.Canvas, a.Scene, t, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.Window.SwapBuffers() }()

	if budget := FrameBudget(); budget > 0 {
		if d := time.Since(now); d > budget*3/2 {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}
	}

	// Clear edge flags at end of frame
	a.Input.PostUpdate()

	a.fpsLimiter.Wait()
}

func (a *App) playSounds(ev scene.Events) {
	if a.Sounds == nil {
		return
	}
	if ev.ModeChanged {
		a.Sounds.PlayModeSwitch()
	}
	if ev.CollapseStarted {
		a.Sounds.PlayCollapse()
	}
	a.Sounds.SetThrust(ev.Thrusting)
}

// Resize propagates a new framebuffer size to the scene, the projection and the canvas
func (a *App) Resize(width, height int) {
	a.Scene.Resize(width, height)
	a.Renderer.UpdateViewport(width, height)
	if v, ok := a.Canvas.(viewporter); ok {
		v.SetViewport(width, height)
	}
}
