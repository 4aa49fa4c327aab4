package tui

import (
	"math"

	"datetime-picker/internal/dial"
)

// The clock face is drawn on a character canvas. Terminal cells are about
// twice as tall as wide, so the canvas is twice as wide as it is tall and
// reads as a circle.
const (
	clockRows = 17
	clockCols = 2*(clockRows-1) + 1
)

// cellPointer maps a canvas cell to a normalized dial pointer; (0,0) is the
// top-left cell and (cols-1, rows-1) the bottom-right one.
func cellPointer(col, row, cols, rows int) dial.Pointer {
	return dial.Pointer{
		X: float64(col) / float64(cols-1),
		Y: float64(row) / float64(rows-1),
	}
}

// pointerCell is the inverse of cellPointer, rounded to the nearest cell.
func pointerCell(p dial.Pointer, cols, rows int) (col, row int) {
	return int(math.Round(p.X * float64(cols-1))), int(math.Round(p.Y * float64(rows-1)))
}

func inCanvas(col, row int) bool {
	return col >= 0 && col < clockCols && row >= 0 && row < clockRows
}
