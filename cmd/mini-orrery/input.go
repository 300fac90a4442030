package main

import (
	"mini-orrery/internal/game"
	"mini-orrery/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, im *input.Manager, app *game.App) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(input.Key(key), input.KeyAction(action))
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		app.Resize(width, height)
	})
}
