package audio

import (
	"math"
	"mini-orrery/internal/config"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

func drain(s beep.Streamer) (total int, samples [][2]float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		total += n
		if !ok || n == 0 {
			return total, samples
		}
	}
}

func TestSweepLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	total, samples := drain(NewSweep(rate, 400, 40, 250*time.Millisecond))
	if total != rate.N(250*time.Millisecond) {
		t.Errorf("got %d samples, want %d", total, rate.N(250*time.Millisecond))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v", i, s)
		}
	}
	// the tail has faded
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("last sample %v", last)
	}
}

func TestSweepEndsWithoutSamples(t *testing.T) {
	s := NewSweep(beep.SampleRate(8000), 100, 50, 0)
	n, ok := s.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("empty sweep streamed n=%d ok=%v", n, ok)
	}
}

func TestFadeRampsEdges(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone, err := generators.SineTone(rate, 200)
	if err != nil {
		t.Fatalf("tone: %v", err)
	}
	total, samples := drain(NewFade(tone, rate, 100*time.Millisecond, 10*time.Millisecond))
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("got %d samples", total)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample %v, want silence", samples[0][0])
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 1.0/float64(rate.N(10*time.Millisecond)) {
		t.Errorf("last sample %v", last)
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	m := NewManager()
	m.SetThrust(true)
	m.PlayCollapse()
	m.PlayModeSwitch()
	m.SetThrust(false)
	m.Close()
	if m.Active() {
		t.Errorf("manager active without Initialize")
	}
	if m.thrust != nil || m.mixer.Len() > 0 {
		t.Errorf("streams queued without a speaker")
	}
}

func TestInitializeRespectsConfig(t *testing.T) {
	config.SetAudioEnabled(false)
	defer config.SetAudioEnabled(true)

	m := NewManager()
	if err := m.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if m.Active() {
		t.Errorf("audio opened while disabled")
	}
}

func TestEngineHum(t *testing.T) {
	hum, err := engineHum()
	if err != nil {
		t.Fatalf("engine hum: %v", err)
	}
	buf := make([][2]float64, 1024)
	n, ok := hum.Stream(buf)
	if n != len(buf) || !ok {
		t.Errorf("hum stopped: n=%d ok=%v", n, ok)
	}
	for _, s := range buf {
		if math.Abs(s[0]) > 0.25 {
			t.Fatalf("hum too loud: %v", s[0])
		}
	}
}
