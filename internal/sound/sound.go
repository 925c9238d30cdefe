// Package sound plays a short pop for each explosion on the board.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

const (
	SampleRate = beep.SampleRate(44100)

	// At most this many pops are queued for a single explode pass.
	maxPops = 6
)

// Player reacts to explode passes.
type Player interface {
	Pop(ex []dots.Explosion)
	Enabled() bool
	SetEnabled(on bool)
}

// Nop is a silent Player.
type Nop struct{ on bool }

func (n *Nop) Pop([]dots.Explosion) {}
func (n *Nop) Enabled() bool { return n.on }
func (n *Nop) SetEnabled(on bool) { n.on = on }

// Speaker plays pops through the system audio device.
type Speaker struct {
	freq     float64
	duration time.Duration
	volume   float64
	enabled  bool
	logger   *zap.Logger
}

// NewSpeaker initializes the audio device. It must be called at most once
// per process.
func NewSpeaker(freq float64, duration time.Duration, volume float64, logger *zap.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Speaker{
		freq:     freq,
		duration: duration,
		volume:   volume,
		enabled:  true,
		logger:   logger,
	}, nil
}

func (s *Speaker) Enabled() bool { return s.enabled }
func (s *Speaker) SetEnabled(on bool) { s.enabled = on }

// Pop queues one tone per explosion, pitched by place so carries into
// higher places sound higher.
func (s *Speaker) Pop(ex []dots.Explosion) {
	if !s.enabled || len(ex) == 0 {
		return
	}
	stream := Pops(ex, s.freq, s.duration)
	speaker.Play(withVolume(stream, s.volume))
	s.logger.Debug("pop", zap.Int("explosions", len(ex)))
}

// Pops builds the sequence of tones for an explode pass.
func Pops(ex []dots.Explosion, freq float64, d time.Duration) beep.Streamer {
	if len(ex) > maxPops {
		ex = ex[:maxPops]
	}
	tones := make([]beep.Streamer, 0, len(ex))
	for _, e := range ex {
		f := freq * math.Pow(2, -float64(e.Place)/6)
		if e.Sign < 0 {
			f *= 0.75
		}
		tones = append(tones, Tone(SampleRate, f, d))
	}
	return beep.Seq(tones...)
}

// Tone is a sine burst with a linear decay, n = sr.N(d) samples long.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			decay := 1 - float64(pos)/float64(n)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) * decay
			samples[i] = [2]float64{v, v}
			pos++
		}
		return i, true
	})
}

// withVolume scales s by a linear gain in 0..1.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
