package main

import (
	"log"
	"mini-orrery/internal/audio"
	"mini-orrery/internal/config"
	"mini-orrery/internal/game"
	"mini-orrery/internal/graphics"
	"mini-orrery/internal/graphics/glcanvas"
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
	renderer "mini-orrery/internal/graphics/renderer"
	"mini-orrery/internal/input"
	"mini-orrery/internal/scene"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	sounds := audio.NewManager()
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the scene runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	closer.Bind(sounds.Close)

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}

	window, err := setupWindow()
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}
	width, height := window.GetFramebufferSize()

	canvas, err := glcanvas.New(width, height)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	if dir := os.Getenv("MINI_ORRERY_ASSETS"); dir != "" {
		config.SetAssetDir(dir)
	}
	textures := graphics.NewTextureSet(canvas, config.GetAssetDir())
	missing := textures.LoadAll(graphics.SceneAssets)
	log.Printf("Loaded %d textures (%d placeholders)", len(graphics.SceneAssets)-missing, missing)

	// Initialize renderer with all features, in draw order
	r, err := renderer.NewRenderer(width, height, textures,
		skybox.NewSkybox(),
		sun.NewSun(),
		orbits.NewOrbits(),
		asteroids.NewAsteroids(),
		ufos.NewUFOs(),
		blackhole.NewBlackHole(),
		rocket.NewRocket(),
		planets.NewPlanets(),
		overlay.NewOverlay(),
		hud.NewHUD(textures),
	)
	if err != nil {
		canvas.Dispose()
		glfw.Terminate()
		closer.Fatalln(err)
	}

	s, err := scene.New(scene.Options{
		Width:     width,
		Height:    height,
		Asteroids: config.GetAsteroidCount(),
		UFOs:      config.GetUFOCount(),
		Seed:      time.Now().UnixNano(),
	})
	if err != nil {
		r.Dispose()
		canvas.Dispose()
		glfw.Terminate()
		closer.Fatalln(err)
	}

	im := input.NewManager()
	app := game.NewApp(game.Deps{
		Window:   window,
		Poll:     glfw.PollEvents,
		Canvas:   canvas,
		Pointer:  &pointer{window: window, im: im},
		Input:    im,
		Scene:    s,
		Renderer: r,
		Sounds:   sounds,
	})
	setupInputHandlers(window, im, app)

	app.Run()

	// GL resources belong to this thread; release them before handing over to closer
	r.Dispose()
	canvas.Dispose()
	glfw.Terminate()
	closer.Close()
}
