package game

// EventKind enumerates the inputs the game state reacts to.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerMoved
	EventNudge
	EventRestart
)

// Event is a single input. Y is used by EventPointerMoved, Side and
// Direction by EventNudge.
type Event struct {
	Kind      EventKind
	Y         float64
	Side      Side
	Direction Direction
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func PointerMoved(y float64) Event {
	return Event{Kind: EventPointerMoved, Y: y}
}

func Nudge(side Side, dir Direction) Event {
	return Event{Kind: EventNudge, Side: side, Direction: dir}
}

func Restart() Event {
	return Event{Kind: EventRestart}
}
