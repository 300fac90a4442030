// Package audio plays the scene's sound cues: the rocket's engine hum, the
// black hole swallowing it and a blip on camera mode changes.
package audio

import (
	"fmt"
	"log"
	"mini-orrery/internal/config"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker mixer. Every method is a no-op until Initialize
// succeeds, so the scene runs silently when no audio device is available.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	initialized bool
}

// NewManager creates a silent manager
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker unless audio is disabled in the config
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !config.GetAudioEnabled() {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Active reports whether sound is being produced
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// SetThrust starts or pauses the looping engine hum
func (m *Manager) SetThrust(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.thrust == nil {
		if !on {
			return
		}
		hum, err := engineHum()
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		m.thrust = &beep.Ctrl{Streamer: hum}
		speaker.Lock()
		m.mixer.Add(m.thrust)
		speaker.Unlock()
		return
	}

	speaker.Lock()
	m.thrust.Paused = !on
	speaker.Unlock()
}

// PlayCollapse plays a falling sweep for the rocket being swallowed
func (m *Manager) PlayCollapse() {
	m.play(quieter(NewSweep(sampleRate, 420, 40, 1500*time.Millisecond), 1))
}

// PlayModeSwitch plays a short blip
func (m *Manager) PlayModeSwitch() {
	tone, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	m.play(quieter(NewFade(tone, sampleRate, 80*time.Millisecond, 10*time.Millisecond), 2))
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.thrust = nil
	m.initialized = false
}

// engineHum mixes a low fundamental with its fifth
func engineHum() (beep.Streamer, error) {
	low, err := generators.SineTone(sampleRate, 55)
	if err != nil {
		return nil, fmt.Errorf("engine hum: %w", err)
	}
	fifth, err := generators.SineTone(sampleRate, 82.5)
	if err != nil {
		return nil, fmt.Errorf("engine hum: %w", err)
	}
	return quieter(beep.Mix(low, fifth), 3), nil
}

// quieter lowers a stream by halvings of amplitude
func quieter(s beep.Streamer, halvings float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -halvings}
}
