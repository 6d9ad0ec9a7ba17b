package ui

import "math"

// Rows above the arena reserved for the scoreboard.
const statusRows = 1

// Viewport maps arena pixels onto terminal cells. The arena is stretched to
// fill every row below the scoreboard.
type Viewport struct {
	Cols, Rows     int
	ArenaW, ArenaH float64
}

func NewViewport(cols, rows int, arenaW, arenaH float64) Viewport {
	return Viewport{Cols: cols, Rows: rows, ArenaW: arenaW, ArenaH: arenaH}
}

// ArenaRows is the number of rows the arena occupies.
func (v Viewport) ArenaRows() int {
	if v.Rows <= statusRows {
		return 0
	}
	return v.Rows - statusRows
}

func (v Viewport) scaleX() float64 {
	return float64(v.Cols) / v.ArenaW
}

func (v Viewport) scaleY() float64 {
	return float64(v.ArenaRows()) / v.ArenaH
}

// Cell returns the terminal cell containing an arena point.
func (v Viewport) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.scaleX())), int(math.Floor(y*v.scaleY())) + statusRows
}

// span returns the half-open cell range [lo, hi) covering arena interval
// [a, b] with the given scale. It is never empty.
func span(a, b, scale float64, offset int) (int, int) {
	lo := int(math.Floor(a * scale))
	hi := int(math.Ceil(b * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return lo + offset, hi + offset
}

// CellCenter returns the arena point at the middle of a cell.
func (v Viewport) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.scaleX(), (float64(row-statusRows) + 0.5) / v.scaleY()
}

// ArenaY converts a terminal row to an arena y coordinate.
func (v Viewport) ArenaY(row int) float64 {
	if v.ArenaRows() == 0 {
		return 0
	}
	return float64(row-statusRows) / v.scaleY()
}
