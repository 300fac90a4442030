package config

import "sync"

// Settings holds runtime configuration for the scene
type Settings struct {
	mu               sync.RWMutex
	fpsLimit         int
	mouseSensitivity float32
	asteroidCount    int
	ufoCount         int
	assetDir         string
	audioEnabled     bool
	hudEnabled       bool
}

var globalSettings = &Settings{
	fpsLimit:         60,
	mouseSensitivity: 0.005,
	asteroidCount:    200,
	ufoCount:         2,
	assetDir:         "assets",
	audioEnabled:     true,
	hudEnabled:       true,
}

// GetFPSLimit returns the frame-rate cap. 0 disables the limiter.
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame-rate cap
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}
	globalSettings.fpsLimit = limit
}

// GetMouseSensitivity returns radians of rocket yaw/pitch per pixel of mouse motion
func GetMouseSensitivity() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.mouseSensitivity
}

// SetMouseSensitivity sets the look sensitivity
func SetMouseSensitivity(s float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if s < 0.0005 {
		s = 0.0005
	}
	if s > 0.05 {
		s = 0.05
	}
	globalSettings.mouseSensitivity = s
}

// GetAsteroidCount returns the size of the asteroid belt created at startup
func GetAsteroidCount() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.asteroidCount
}

// SetAsteroidCount sets the belt population. Negative values mean no belt.
func SetAsteroidCount(n int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if n < 0 {
		n = 0
	}
	globalSettings.asteroidCount = n
}

// GetUFOCount returns how many UFOs wander the scene
func GetUFOCount() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.ufoCount
}

// SetUFOCount sets the UFO population
func SetUFOCount(n int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if n < 0 {
		n = 0
	}
	globalSettings.ufoCount = n
}

// GetAssetDir returns the directory textures are loaded from
func GetAssetDir() string {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.assetDir
}

// SetAssetDir sets the texture directory
func SetAssetDir(dir string) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.assetDir = dir
}

// GetAudioEnabled returns whether audio cues should be initialized
func GetAudioEnabled() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.audioEnabled
}

// SetAudioEnabled enables or disables audio cues
func SetAudioEnabled(enabled bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.audioEnabled = enabled
}

// GetHUDEnabled returns whether the status line is drawn
func GetHUDEnabled() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.hudEnabled
}

// ToggleHUD flips the status line visibility
func ToggleHUD() {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.hudEnabled = !globalSettings.hudEnabled
}
