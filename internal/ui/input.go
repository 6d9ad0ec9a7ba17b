package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wickus/pongo/internal/game"
)

const eventBufferSize = 64

// KeyToNudge maps movement keys to a paddle and direction.
// w/s drive the left paddle, the arrow keys the right one.
func KeyToNudge(key tcell.Key, r rune) (game.Side, game.Direction) {
	switch key {
	case tcell.KeyUp:
		return game.SideRight, game.DirUp
	case tcell.KeyDown:
		return game.SideRight, game.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.SideLeft, game.DirUp
		case 's', 'S':
			return game.SideLeft, game.DirDown
		}
	}
	return game.SideLeft, game.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start a rematch
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// KeyToEvent converts a key press into a game event.
func KeyToEvent(key tcell.Key, r rune) (game.Event, bool) {
	if IsQuitKey(key, r) {
		return game.Quit(), true
	}
	if IsStartKey(key) {
		return game.Restart(), true
	}
	if side, dir := KeyToNudge(key, r); dir != game.DirNone {
		return game.Nudge(side, dir), true
	}
	return game.Event{}, false
}

// Translate converts a terminal event into a game event. Mouse movement is
// mapped through the viewport onto the arena.
func Translate(ev tcell.Event, view Viewport) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return KeyToEvent(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		_, row := ev.Position()
		return game.PointerMoved(view.ArenaY(row)), true
	}
	return game.Event{}, false
}

type eventSource interface {
	PollEvent() tcell.Event
}

// Input turns terminal events into game events without blocking the frame
// loop. A goroutine forwards raw events; translation happens on PollEvent.
type Input struct {
	events   chan tcell.Event
	renderer *Renderer
	done     chan struct{}
}

func NewInput(src eventSource, renderer *Renderer) *Input {
	in := &Input{
		events:   make(chan tcell.Event, eventBufferSize),
		renderer: renderer,
		done:     make(chan struct{}),
	}
	go in.pump(src)
	return in
}

func (in *Input) pump(src eventSource) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// PollEvent returns the next pending game event, or false when none is
// waiting. Resize events are consumed here and update the renderer.
func (in *Input) PollEvent() (game.Event, bool) {
	for {
		select {
		case ev := <-in.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				in.renderer.Resize()
				continue
			}
			if e, ok := Translate(ev, in.renderer.Viewport()); ok {
				return e, true
			}
		default:
			return game.Event{}, false
		}
	}
}

// Close stops forwarding events.
func (in *Input) Close() {
	select {
	case <-in.done:
	default:
		close(in.done)
	}
}
