package main

import (
	"fmt"
	"mini-orrery/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// setupWindow opens a full-screen window on the primary monitor at its current video mode
func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil, fmt.Errorf("no primary monitor")
	}
	mode := monitor.GetVideoMode()
	glfw.WindowHint(glfw.RedBits, mode.RedBits)
	glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
	glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
	glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)

	window, err := glfw.CreateWindow(mode.Width, mode.Height, "mini-orrery", monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	// Disable V-Sync; we'll use our own FPS limiter
	glfw.SwapInterval(0)

	// The OS cursor stays hidden; the rocket sprite replaces it
	window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)

	return window, nil
}

// pointer adapts a GLFW window to input.Pointer
type pointer struct {
	window  *glfw.Window
	im      *input.Manager
	grabbed bool
}

func (p *pointer) SetGrabbed(grabbed bool) {
	p.grabbed = grabbed
	if grabbed {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
}

func (p *pointer) SetCursorVisible(visible bool) {
	if p.grabbed {
		return
	}
	if visible {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

// SetPosition warps the cursor and tells the input manager so the jump is
// not read as motion
func (p *pointer) SetPosition(x, y float64) {
	p.window.SetCursorPos(x, y)
	p.im.Warp(x, y)
}

func (p *pointer) Position() (float64, float64) {
	return p.window.GetCursorPos()
}
