package game

import "github.com/lucasb-eyer/go-colorful"

// Seconds a key nudge keeps a paddle moving; terminals report no key release.
const NudgeHold = 0.12

// Side identifies a paddle.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Direction is a keyboard movement request.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

type Paddle struct {
	Side   Side
	X, Y   float64 // top-left; X never changes
	Width  float64
	Height float64
	Speed  float64 // pixels per second for keyboard movement
	Score  int
	Color  colorful.Color

	Direction Direction
	holdLeft  float64
}

// Rect returns the paddle's current bounds.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// MoveTo places the top of the paddle at y, clamped to the arena.
func (p *Paddle) MoveTo(y, arenaHeight float64) {
	switch {
	case y < 0:
		y = 0
	case y+p.Height > arenaHeight:
		y = arenaHeight - p.Height
	}
	p.Y = y
}

// SetDirection starts or refreshes a keyboard movement.
func (p *Paddle) SetDirection(dir Direction) {
	p.Direction = dir
	if dir != DirNone {
		p.holdLeft = NudgeHold
	}
}

// Update applies keyboard movement for dt seconds.
func (p *Paddle) Update(dt, arenaHeight float64) {
	if p.Direction == DirNone || dt <= 0 {
		return
	}

	step := dt
	if step > p.holdLeft {
		step = p.holdLeft
	}
	switch p.Direction {
	case DirUp:
		p.MoveTo(p.Y-p.Speed*step, arenaHeight)
	case DirDown:
		p.MoveTo(p.Y+p.Speed*step, arenaHeight)
	}

	p.holdLeft -= dt
	if p.holdLeft <= 0 {
		p.holdLeft = 0
		p.Direction = DirNone
	}
}
