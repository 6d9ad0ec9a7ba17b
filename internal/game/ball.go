package game

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Ball is the bouncing ball. Position is the top-left of its bounding box.
type Ball struct {
	Position Vec2
	Velocity Vec2
	Diameter float64
	Speed    float64 // pixels per second, constant magnitude of Velocity
	Color    colorful.Color

	// MaxBounceAngle caps the deflection off a paddle, in radians.
	MaxBounceAngle float64
}

// Launch describes the initial direction of a serve.
type Launch struct {
	Angle float64 // radians off horizontal
	Up    bool
	Left  bool
}

// RandomLaunch picks an angle in [0, maxAngle) and an independent sign per axis.
func RandomLaunch(rng *rand.Rand, maxAngle float64) Launch {
	return Launch{
		Angle: rng.Float64() * maxAngle,
		Up:    rng.IntN(2) == 0,
		Left:  rng.IntN(2) == 0,
	}
}

// Center places the ball in the middle of the arena
func (b *Ball) Center(arena Arena) {
	b.Position = Vec2{
		X: (arena.Width - b.Diameter) / 2,
		Y: (arena.Height - b.Diameter) / 2,
	}
}

// Launch sets the velocity for a serve. Its magnitude is always Speed.
func (b *Ball) Launch(l Launch) {
	vy := math.Sin(l.Angle) * b.Speed
	if l.Up {
		vy = -vy
	}
	vx := math.Cos(l.Angle) * b.Speed
	if l.Left {
		vx = -vx
	}
	b.Velocity = Vec2{X: vx, Y: vy}
}

// Step advances the ball by dt seconds and settles collisions.
func (b *Ball) Step(dt float64, arena Arena, left, right Rect) Contact {
	if dt < 0 {
		dt = 0
	}
	res := Resolve(Frame{
		From:           b.Position,
		To:             Integrate(b.Position, b.Velocity, dt),
		Velocity:       b.Velocity,
		DT:             dt,
		Diameter:       b.Diameter,
		Speed:          b.Speed,
		MaxBounceAngle: b.MaxBounceAngle,
		Width:          arena.Width,
		Height:         arena.Height,
		Left:           left,
		Right:          right,
	})
	b.Position = res.Position
	b.Velocity = res.Velocity
	return res.Contacts
}
