package input

import "sync"

// Action represents a logical scene action, not a physical key
type Action int

// Action constants using iota
const (
	ActionQuit Action = iota
	ActionChaseMode
	ActionOverviewMode
	ActionThrustForward
	ActionThrustReverse
	ActionToggleHUD
	ActionCount // Sentinel value for array sizing
)

// Key is a physical key code. Values follow GLFW's numbering so the window
// layer can convert with a plain cast.
type Key int

const (
	KeyH      Key = 72
	KeyS      Key = 83
	KeyW      Key = 87
	KeyX      Key = 88
	KeyZ      Key = 90
	KeyEscape Key = 256
)

// KeyAction is the transition reported with a key event
type KeyAction int

// Same values as glfw.Release, glfw.Press, glfw.Repeat
const (
	Release KeyAction = iota
	Press
	Repeat
)

// Manager collects key and cursor events from the window callbacks and maps
// physical keys to logical actions. The frame loop reads it once per frame
// through Snapshot.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[Key][]Action

	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	mouseX, mouseY float64
	// cursor position at the end of the previous frame, delta reference
	refX, refY float64
	haveCursor bool
}

// NewManager creates a Manager with the fixed key bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[Key][]Action),
	}

	m.BindKey(KeyEscape, ActionQuit)
	m.BindKey(KeyX, ActionChaseMode)
	m.BindKey(KeyZ, ActionOverviewMode)
	m.BindKey(KeyW, ActionThrustForward)
	m.BindKey(KeyS, ActionThrustReverse)
	m.BindKey(KeyH, ActionToggleHUD)

	return m
}

// BindKey binds a physical key to a logical action
func (m *Manager) BindKey(key Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (m *Manager) HandleKeyEvent(key Key, action KeyAction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, exists := m.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == Press || action == Repeat
	for _, act := range actions {
		// Detect edges immediately when event arrives
		if isPressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !isPressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = isPressed
	}
}

// HandleCursorPos records the absolute cursor position in window pixels
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mouseX, m.mouseY = x, y
	if !m.haveCursor {
		m.refX, m.refY = x, y
		m.haveCursor = true
	}
}

// Warp moves the tracked cursor without producing any relative motion.
// Call it whenever the program repositions the OS cursor itself.
func (m *Manager) Warp(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mouseX, m.mouseY = x, y
	m.refX, m.refY = x, y
	m.haveCursor = true
}

// Snapshot returns the input state of the current frame
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		held:    m.currentState,
		pressed: m.justPressed,
		MouseX:  m.mouseX,
		MouseY:  m.mouseY,
		MouseDX: m.mouseX - m.refX,
		MouseDY: m.mouseY - m.refY,
	}
}

// PostUpdate must be called at the end of each frame. It clears edge flags
// and makes the current cursor position the reference for the next delta.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
	m.refX, m.refY = m.mouseX, m.mouseY
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[action]
}
