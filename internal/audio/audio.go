package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Player plays the game's sound cues. A Player that failed to open the
// speaker stays silent.
type Player struct {
	initialized bool
}

// NewPlayer opens the speaker. The returned Player is usable even when err
// is non-nil.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return &Player{}, err
	}
	return &Player{initialized: true}, nil
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PaddleHit plays a short high beep
func (p *Player) PaddleHit() {
	if !p.initialized {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// WallBounce plays a short mid beep
func (p *Player) WallBounce() {
	if !p.initialized {
		return
	}
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// Score plays a descending three-note cue without blocking the caller.
func (p *Player) Score() {
	if !p.initialized {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	))
}
