package game

import (
	"math"
	"math/rand/v2"

	"github.com/wickus/pongo/internal/config"
)

// Frame deltas above this are treated as a clock hiccup and clamped.
const MaxFrameDelta = 0.25

// State is the game aggregate. It is owned by the frame loop and only
// mutated between frames.
type State struct {
	Arena Arena
	Ball  Ball
	Left  Paddle
	Right Paddle

	PointsToWin int
	ServeDelay  float64 // seconds the ball holds at centre before a serve

	Running bool
	Over    bool
	Winner  Side

	serveIn        float64
	maxLaunchAngle float64
	rng            *rand.Rand
}

// New builds the initial state from a validated configuration and serves
// the first ball in a random direction.
func New(cfg config.Config, rng *rand.Rand) *State {
	s := &State{
		Arena: Arena{
			Width:  cfg.ArenaWidth,
			Height: cfg.ArenaHeight,
			Color:  cfg.ArenaColor.Color,
		},
		Ball: Ball{
			Diameter:       cfg.BallDiameter,
			Speed:          cfg.BallSpeed,
			Color:          cfg.BallColor.Color,
			MaxBounceAngle: cfg.MaxBounceAngle,
		},
		Left: Paddle{
			Side:   SideLeft,
			X:      cfg.PaddleOffset,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
			Speed:  cfg.PaddleSpeed,
			Color:  cfg.LeftColor.Color,
		},
		Right: Paddle{
			Side:   SideRight,
			X:      cfg.ArenaWidth - (cfg.PaddleOffset + cfg.PaddleWidth),
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
			Speed:  cfg.PaddleSpeed,
			Color:  cfg.RightColor.Color,
		},
		PointsToWin:    cfg.PointsToWin,
		ServeDelay:     cfg.ServeDelay.Seconds(),
		Running:        true,
		maxLaunchAngle: cfg.MaxLaunchAngle,
		rng:            rng,
	}

	s.centerPaddles()
	s.Ball.Center(s.Arena)
	s.Ball.Launch(RandomLaunch(s.rng, s.maxLaunchAngle))
	return s
}

// Paddle returns the paddle on the given side.
func (s *State) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return &s.Left
	}
	return &s.Right
}

// Serving reports whether the ball is waiting at centre for a serve.
func (s *State) Serving() bool {
	return s.serveIn > 0
}

// HandleEvent applies one input event.
func (s *State) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventQuit:
		s.Running = false
	case EventPointerMoved:
		s.Left.MoveTo(ev.Y, s.Arena.Height)
	case EventNudge:
		s.Paddle(ev.Side).SetDirection(ev.Direction)
	case EventRestart:
		if s.Over {
			s.reset()
		}
	}
}

// Step advances the game by dt seconds and returns every contact the ball
// made. Ball travel is split into sub-steps no longer than one diameter.
func (s *State) Step(dt float64) Contact {
	if dt <= 0 || !s.Running {
		return 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	s.Left.Update(dt, s.Arena.Height)
	s.Right.Update(dt, s.Arena.Height)

	if s.Over {
		return 0
	}
	if s.serveIn > 0 {
		s.serveIn -= dt
		if s.serveIn > 0 {
			return 0
		}
		// Spend what is left of the frame in flight.
		dt = -s.serveIn
		s.serveIn = 0
	}

	steps := int(math.Ceil(s.Ball.Speed * dt / s.Ball.Diameter))
	if steps < 1 {
		steps = 1
	}
	h := dt / float64(steps)

	var contacts Contact
	for range steps {
		c := s.Ball.Step(h, s.Arena, s.Left.Rect(), s.Right.Rect())
		contacts |= c
		if c.Scored() {
			s.point(c)
			break
		}
	}
	return contacts
}

// point credits the paddle opposite the wall that was reached, then either
// ends the game or queues the next serve toward the player who conceded.
func (s *State) point(c Contact) {
	conceded := SideRight
	if c.Has(ContactLeftWall) {
		conceded = SideLeft
	}
	scorer := s.Paddle(1 - conceded)
	scorer.Score++

	s.Ball.Center(s.Arena)
	if s.PointsToWin > 0 && scorer.Score >= s.PointsToWin {
		s.Over = true
		s.Winner = scorer.Side
		return
	}
	s.serve(conceded == SideLeft)
}

func (s *State) serve(toLeft bool) {
	l := RandomLaunch(s.rng, s.maxLaunchAngle)
	l.Left = toLeft
	s.Ball.Center(s.Arena)
	s.Ball.Launch(l)
	s.serveIn = s.ServeDelay
}

// reset starts a new match with the same settings.
func (s *State) reset() {
	s.Left.Score = 0
	s.Right.Score = 0
	s.Over = false
	s.centerPaddles()
	s.serve(s.Winner == SideRight)
}

func (s *State) centerPaddles() {
	s.Left.Y = (s.Arena.Height - s.Left.Height) / 2
	s.Right.Y = (s.Arena.Height - s.Right.Height) / 2
}
