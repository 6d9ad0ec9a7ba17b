package game

import "math"

// Contact records which surfaces the ball touched while a frame was resolved.
type Contact uint8

const (
	ContactTop Contact = 1 << iota
	ContactBottom
	ContactLeftPaddle
	ContactRightPaddle
	ContactLeftWall
	ContactRightWall
)

// Has reports whether every bit of flag is set.
func (c Contact) Has(flag Contact) bool {
	return c&flag == flag
}

// Wall reports a top or bottom bounce.
func (c Contact) Wall() bool {
	return c&(ContactTop|ContactBottom) != 0
}

// Paddle reports a bounce off either paddle.
func (c Contact) Paddle() bool {
	return c&(ContactLeftPaddle|ContactRightPaddle) != 0
}

// Scored reports that the ball reached a side wall behind a paddle.
func (c Contact) Scored() bool {
	return c&(ContactLeftWall|ContactRightWall) != 0
}

// Frame is everything the resolver needs to settle one step of ball travel.
type Frame struct {
	From     Vec2 // top-left of the ball at the start of the step
	To       Vec2 // proposed top-left from Integrate
	Velocity Vec2
	DT       float64

	Diameter       float64
	Speed          float64
	MaxBounceAngle float64

	Width, Height float64
	Left, Right   Rect
}

// Resolution is the settled outcome of a Frame.
type Resolution struct {
	Position Vec2
	Velocity Vec2
	Contacts Contact
}

// Integrate moves pos along vel for dt seconds. A negative dt counts as zero.
func Integrate(pos, vel Vec2, dt float64) Vec2 {
	if dt < 0 {
		dt = 0
	}
	return pos.Add(vel.Scale(dt))
}

// Resolve corrects a proposed ball position against the arena walls and both
// paddles. The checks run in a fixed order: top/bottom wall, left paddle,
// right paddle, left/right wall. Each later check sees the position produced
// by the earlier ones.
func Resolve(f Frame) Resolution {
	pos := f.To
	vel := f.Velocity
	var contacts Contact

	// Top or bottom wall.
	contacts |= f.reflectY(&pos, &vel)

	// Left paddle: the ball's left edge crosses the paddle's right face.
	face := f.Left.Right()
	if pos.X < face && f.From.X >= face {
		if p, v, ok := bounce(f, pos, vel, face, f.Left, 1); ok {
			pos, vel = p, v
			contacts |= ContactLeftPaddle
		}
	}

	// Right paddle: the ball's right edge crosses the paddle's left face.
	face = f.Right.X
	if pos.X+f.Diameter > face && f.From.X+f.Diameter <= face {
		if p, v, ok := bounce(f, pos, vel, face-f.Diameter, f.Right, -1); ok {
			pos, vel = p, v
			contacts |= ContactRightPaddle
		}
	}

	// The relaunch after a paddle hit can carry the ball past a wall again.
	if contacts.Paddle() {
		contacts |= f.reflectY(&pos, &vel)
	}

	// Left or right wall.
	switch mirror(&pos.X, &vel.X, f.Width-f.Diameter) {
	case boundLow:
		contacts |= ContactLeftWall
	case boundHigh:
		contacts |= ContactRightWall
	}

	return Resolution{Position: pos, Velocity: vel, Contacts: contacts}
}

func (f Frame) reflectY(pos, vel *Vec2) Contact {
	switch mirror(&pos.Y, &vel.Y, f.Height-f.Diameter) {
	case boundLow:
		return ContactTop
	case boundHigh:
		return ContactBottom
	}
	return 0
}

type bound int

const (
	boundNone bound = iota
	boundLow
	boundHigh
)

// mirror reflects p back into [0, hi] about the bound it reached, keeping
// the overshoot distance, and reverses v. Resting exactly on hi counts as
// reaching it.
func mirror(p, v *float64, hi float64) bound {
	switch {
	case *p < 0:
		*p = -*p
		*v = -*v
		return boundLow
	case *p >= hi:
		*p = hi - (*p - hi)
		*v = -*v
		return boundHigh
	}
	return boundNone
}

// bounce finds where the straight path From->to meets contactX and, if that
// point lies on the paddle, relaunches the ball from it. dir is +1 for a
// rightward relaunch (left paddle) and -1 for a leftward one.
func bounce(f Frame, to, vel Vec2, contactX float64, paddle Rect, dir float64) (Vec2, Vec2, bool) {
	dx := to.X - f.From.X
	if dx == 0 {
		// Purely vertical travel never crosses a paddle face.
		return to, vel, false
	}

	// The path keeps a constant gradient, so the crossing height follows
	// by linear interpolation.
	contactY := (to.Y-f.From.Y)/dx*(contactX-f.From.X) + f.From.Y
	if contactY < paddle.Y || contactY > paddle.Bottom() {
		return to, vel, false
	}

	// Angle grows linearly from zero at the centre to the cap at either end.
	half := paddle.H / 2
	offset := paddle.Y + half - contactY
	angle := math.Abs(offset/half) * f.MaxBounceAngle

	sign := 1.0
	if vel.Y < 0 {
		sign = -1
	}
	out := Vec2{
		X: dir * f.Speed * math.Cos(angle),
		Y: sign * f.Speed * math.Sin(angle),
	}

	// Time left after the contact, as the share of x travel beyond the face.
	residual := f.DT * (to.X - contactX) / dx
	return Vec2{X: contactX, Y: contactY}.Add(out.Scale(residual)), out, true
}
