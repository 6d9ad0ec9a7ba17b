package app

import "time"

// SystemClock reads the wall clock with its monotonic component.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FramePacer holds each frame to at least 1/FPS seconds.
type FramePacer struct {
	FPS   int
	Sleep func(time.Duration)
}

// NewFramePacer returns a pacer that sleeps with time.Sleep.
func NewFramePacer(fps int) *FramePacer {
	return &FramePacer{FPS: fps, Sleep: time.Sleep}
}

// Budget is the time left in the frame after elapsed was spent working.
func (p *FramePacer) Budget(elapsed time.Duration) time.Duration {
	if p.FPS <= 0 {
		return 0
	}
	frame := time.Second / time.Duration(p.FPS)
	if elapsed >= frame {
		return 0
	}
	return frame - elapsed
}

func (p *FramePacer) Pace(elapsed time.Duration) {
	if d := p.Budget(elapsed); d > 0 {
		p.Sleep(d)
	}
}
