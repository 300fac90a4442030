package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a sine whose pitch glides from one frequency to another and
// fades out over its duration
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a gliding tone of the given length
func NewSweep(rate beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &sweep{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		val := math.Sin(2*math.Pi*s.phase) * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade shapes a finite stream with a linear attack and release
type fade struct {
	streamer beep.Streamer
	attack   int
	release  int
	total    int
	pos      int
}

// NewFade limits s to d and ramps its edges so it starts and ends without a click
func NewFade(s beep.Streamer, rate beep.SampleRate, d, ramp time.Duration) beep.Streamer {
	return &fade{
		streamer: beep.Take(rate.N(d), s),
		attack:   rate.N(ramp),
		release:  rate.N(ramp),
		total:    rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.pos < f.attack {
			vol = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; left < f.release {
			vol = math.Min(vol, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
