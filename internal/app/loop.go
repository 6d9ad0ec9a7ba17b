package app

import (
	"context"
	"log"
	"time"

	"github.com/wickus/pongo/internal/game"
)

// Clock returns monotonic readings.
type Clock interface {
	Now() time.Time
}

// InputSource hands out pending input without blocking.
type InputSource interface {
	PollEvent() (game.Event, bool)
}

// Renderer draws a frame from the current state.
type Renderer interface {
	Draw(s *game.State)
}

// Pacer waits out the rest of a frame.
type Pacer interface {
	Pace(elapsed time.Duration)
}

// Sounds plays cues for ball contacts.
type Sounds interface {
	PaddleHit()
	WallBounce()
	Score()
}

// Loop runs the frame cycle: input, physics, sound, render, pace.
type Loop struct {
	State    *game.State
	Clock    Clock
	Input    InputSource
	Renderer Renderer
	Pacer    Pacer
	Sounds   Sounds
	Logger   *log.Logger
}

// Run blocks until the player quits or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	prev := l.Clock.Now()
	for l.State.Running {
		if ctx.Err() != nil {
			return nil
		}

		start := l.Clock.Now()
		dt := start.Sub(prev).Seconds()
		prev = start

		l.drainInput()
		if !l.State.Running {
			break
		}

		contacts := l.State.Step(dt)
		l.report(contacts)

		l.Renderer.Draw(l.State)
		l.Pacer.Pace(l.Clock.Now().Sub(start))
	}
	return nil
}

func (l *Loop) drainInput() {
	for {
		ev, ok := l.Input.PollEvent()
		if !ok {
			return
		}
		wasOver := l.State.Over
		l.State.HandleEvent(ev)
		if wasOver && !l.State.Over {
			l.Logger.Printf("rematch started")
		}
	}
}

func (l *Loop) report(c game.Contact) {
	if c.Paddle() {
		l.Sounds.PaddleHit()
	}
	if c.Wall() {
		l.Sounds.WallBounce()
	}
	if !c.Scored() {
		return
	}

	l.Sounds.Score()
	l.Logger.Printf("point: left %d - %d right", l.State.Left.Score, l.State.Right.Score)
	if l.State.Over {
		l.Logger.Printf("game over: %s wins", l.State.Winner)
	}
}
