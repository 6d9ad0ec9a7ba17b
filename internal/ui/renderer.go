package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wickus/pongo/internal/game"
)

// Canvas is the cell surface a Renderer draws on. *Screen satisfies it.
type Canvas interface {
	Size() (int, int)
	Clear()
	SetCell(x, y int, style tcell.Style, r rune)
	Show()
}

// Renderer draws the arena with solid-colour cells.
type Renderer struct {
	canvas Canvas
	view   Viewport
}

// NewRenderer creates a renderer sized to the canvas
func NewRenderer(canvas Canvas, arenaW, arenaH float64) *Renderer {
	r := &Renderer{
		canvas: canvas,
		view:   Viewport{ArenaW: arenaW, ArenaH: arenaH},
	}
	r.Resize()
	return r
}

// Resize picks up a new canvas size.
func (r *Renderer) Resize() {
	r.view.Cols, r.view.Rows = r.canvas.Size()
}

func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Clear blanks the canvas and paints the arena background.
func (r *Renderer) Clear(c colorful.Color) {
	r.canvas.Clear()
	style := fillStyle(c)
	for row := statusRows; row < r.view.Rows; row++ {
		for col := 0; col < r.view.Cols; col++ {
			r.canvas.SetCell(col, row, style, ' ')
		}
	}
}

// FillRect paints every cell the arena rectangle touches.
func (r *Renderer) FillRect(x, y, w, h float64, c colorful.Color) {
	style := fillStyle(c)
	col0, col1 := span(x, x+w, r.view.scaleX(), 0)
	row0, row1 := span(y, y+h, r.view.scaleY(), statusRows)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			r.set(col, row, style, ' ')
		}
	}
}

// FillCircle paints the cells whose centres fall inside the circle. A circle
// smaller than a cell still gets the cell under its centre.
func (r *Renderer) FillCircle(cx, cy, radius float64, c colorful.Color) {
	style := fillStyle(c)
	col0, col1 := span(cx-radius, cx+radius, r.view.scaleX(), 0)
	row0, row1 := span(cy-radius, cy+radius, r.view.scaleY(), statusRows)

	drawn := false
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			x, y := r.view.CellCenter(col, row)
			if math.Hypot(x-cx, y-cy) <= radius {
				r.set(col, row, style, ' ')
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := r.view.Cell(cx, cy)
		r.set(col, row, style, ' ')
	}
}

// Present flips the frame to the terminal.
func (r *Renderer) Present() {
	r.canvas.Show()
}

// Draw renders one frame of game state.
func (r *Renderer) Draw(s *game.State) {
	if r.view.ArenaRows() == 0 || r.view.Cols == 0 {
		return
	}

	r.Clear(s.Arena.Color)
	r.drawCenterLine(s.Arena.Color)

	for _, p := range []*game.Paddle{&s.Left, &s.Right} {
		r.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	}

	radius := s.Ball.Diameter / 2
	r.FillCircle(s.Ball.Position.X+radius, s.Ball.Position.Y+radius, radius, s.Ball.Color)

	r.drawScoreboard(s)
	if s.Over {
		r.drawBanner(fmt.Sprintf("%s WINS!", strings.ToUpper(s.Winner.String())), "Press ENTER for rematch | Press 'q' to quit")
	} else if s.Serving() {
		r.drawBanner("GET READY!", "")
	}

	r.Present()
}

func (r *Renderer) drawCenterLine(bg colorful.Color) {
	style := fillStyle(bg).Foreground(tcell.ColorDarkGray)
	col := r.view.Cols / 2
	for row := statusRows; row < r.view.Rows; row += 2 {
		r.canvas.SetCell(col, row, style, '|')
	}
}

// drawScoreboard fills the top row: [ LEFT 3 - 2 RIGHT ]
func (r *Renderer) drawScoreboard(s *game.State) {
	bar := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for col := 0; col < r.view.Cols; col++ {
		r.canvas.SetCell(col, 0, bar, ' ')
	}

	score := fmt.Sprintf(" %d - %d ", s.Left.Score, s.Right.Score)
	text := "[ LEFT" + score + "RIGHT ]"
	x := (r.view.Cols - len(text)) / 2

	r.drawText(x, 0, "[ ", bar.Bold(true))
	r.drawText(x+2, 0, "LEFT", bar.Foreground(TermColor(s.Left.Color)).Bold(true))
	r.drawText(x+6, 0, score, bar.Bold(true))
	r.drawText(x+6+len(score), 0, "RIGHT", bar.Foreground(TermColor(s.Right.Color)).Bold(true))
	r.drawText(x+11+len(score), 0, " ]", bar.Bold(true))

	if s.PointsToWin > 0 {
		r.drawText(1, 0, fmt.Sprintf("First to %d", s.PointsToWin), bar)
	}
}

func (r *Renderer) drawBanner(title, hint string) {
	mid := r.view.Rows / 2
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.drawText((r.view.Cols-len(title))/2, mid, title, titleStyle)
	if hint != "" {
		r.drawText((r.view.Cols-len(hint))/2, mid+2, hint, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.set(x+i, y, style, ch)
	}
}

// set writes a cell, dropping anything outside the canvas.
func (r *Renderer) set(col, row int, style tcell.Style, ch rune) {
	if col < 0 || col >= r.view.Cols || row < 0 || row >= r.view.Rows {
		return
	}
	r.canvas.SetCell(col, row, style, ch)
}

func fillStyle(c colorful.Color) tcell.Style {
	return tcell.StyleDefault.Background(TermColor(c))
}
