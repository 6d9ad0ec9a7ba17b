package ui

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/wickus/pongo/internal/game"
)

func TestKeyToNudge(t *testing.T) {
	tests := []struct {
		key      tcell.Key
		rune     rune
		wantSide game.Side
		wantDir  game.Direction
	}{
		{tcell.KeyUp, 0, game.SideRight, game.DirUp},
		{tcell.KeyDown, 0, game.SideRight, game.DirDown},
		{tcell.KeyRune, 'w', game.SideLeft, game.DirUp},
		{tcell.KeyRune, 'W', game.SideLeft, game.DirUp},
		{tcell.KeyRune, 's', game.SideLeft, game.DirDown},
		{tcell.KeyRune, 'S', game.SideLeft, game.DirDown},
		{tcell.KeyRune, 'x', game.SideLeft, game.DirNone},
	}

	for _, tt := range tests {
		side, dir := KeyToNudge(tt.key, tt.rune)
		if dir != tt.wantDir || (dir != game.DirNone && side != tt.wantSide) {
			t.Errorf("KeyToNudge(%v, %c) = %v %v, want %v %v", tt.key, tt.rune, side, dir, tt.wantSide, tt.wantDir)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}

func TestIsStartKey(t *testing.T) {
	if !IsStartKey(tcell.KeyEnter) {
		t.Error("Enter should be start key")
	}
	if IsStartKey(tcell.KeyRune) {
		t.Error("other keys should not be start key")
	}
}

func TestKeyToEvent(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		rune   rune
		want   game.Event
		wantOK bool
	}{
		{"quit", tcell.KeyRune, 'q', game.Quit(), true},
		{"restart", tcell.KeyEnter, 0, game.Restart(), true},
		{"left up", tcell.KeyRune, 'w', game.Nudge(game.SideLeft, game.DirUp), true},
		{"right down", tcell.KeyDown, 0, game.Nudge(game.SideRight, game.DirDown), true},
		{"ignored", tcell.KeyRune, 'z', game.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyToEvent(tt.key, tt.rune)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("KeyToEvent(%v, %c) = %+v %v, want %+v %v", tt.key, tt.rune, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTranslate_Mouse(t *testing.T) {
	// 30 rows below the scoreboard over a 600px arena: 20px per row.
	view := NewViewport(80, 31, 800, 600)
	ev := tcell.NewEventMouse(10, 16, tcell.ButtonNone, tcell.ModNone)

	got, ok := Translate(ev, view)

	if !ok {
		t.Fatal("expected mouse movement to translate")
	}
	if got.Kind != game.EventPointerMoved || math.Abs(got.Y-300) > 1e-9 {
		t.Errorf("expected pointer at y=300, got %+v", got)
	}
}

func TestInput_PollEvent(t *testing.T) {
	canvas := newFakeCanvas(80, 31)
	r := NewRenderer(canvas, 800, 600)
	in := &Input{
		events:   make(chan tcell.Event, 4),
		renderer: r,
		done:     make(chan struct{}),
	}

	if _, ok := in.PollEvent(); ok {
		t.Fatal("expected no event on an empty queue")
	}

	// A resize is absorbed and rescales later pointer events.
	canvas.w, canvas.h = 80, 61
	in.events <- tcell.NewEventResize(80, 61)
	in.events <- tcell.NewEventMouse(0, 31, tcell.ButtonNone, tcell.ModNone)

	got, ok := in.PollEvent()
	if !ok {
		t.Fatal("expected a pointer event")
	}
	if math.Abs(got.Y-300) > 1e-9 {
		t.Errorf("expected y=300 after resize, got %f", got.Y)
	}
	if r.Viewport().Rows != 61 {
		t.Errorf("expected renderer to pick up 61 rows, got %d", r.Viewport().Rows)
	}

	in.Close()
	in.Close()
}

type scriptedSource struct {
	events []tcell.Event
}

func (s *scriptedSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestInput_PumpForwards(t *testing.T) {
	r := NewRenderer(newFakeCanvas(80, 31), 800, 600)
	src := &scriptedSource{events: []tcell.Event{
		tcell.NewEventMouse(0, 1, tcell.ButtonNone, tcell.ModNone),
	}}
	in := &Input{
		events:   make(chan tcell.Event, 4),
		renderer: r,
		done:     make(chan struct{}),
	}

	// Run the pump to completion; it returns once the source is drained.
	in.pump(src)

	got, ok := in.PollEvent()
	if !ok || got.Kind != game.EventPointerMoved || got.Y != 0 {
		t.Errorf("expected pointer at y=0, got %+v %v", got, ok)
	}
}
