package input

// Snapshot is an immutable view of one frame's input
type Snapshot struct {
	held    [ActionCount]bool
	pressed [ActionCount]bool

	MouseX, MouseY   float64 // absolute, window pixels
	MouseDX, MouseDY float64 // motion since the previous frame
}

// IsActive reports whether the action is held
func (s Snapshot) IsActive(a Action) bool {
	return a >= 0 && a < ActionCount && s.held[a]
}

// JustPressed reports whether the action went down this frame
func (s Snapshot) JustPressed(a Action) bool {
	return a >= 0 && a < ActionCount && s.pressed[a]
}

// Pointer controls the OS cursor. The window layer implements it.
type Pointer interface {
	// SetGrabbed confines the cursor to the window
	SetGrabbed(grabbed bool)
	SetCursorVisible(visible bool)
	// SetPosition warps the cursor, producing no relative motion
	SetPosition(x, y float64)
	Position() (x, y float64)
}
