package geom

import "math"

// CellAspect is how many columns make up the same physical length as one row.
// Terminal cells are roughly twice as tall as they are wide.
const CellAspect = 2

// Viewport maps terminal cells to normalized device coordinates.
// It covers the largest square (in physical units) that fits the available
// area, centered in it, so circles render round.
type Viewport struct {
	X, Y int // Top-left cell of the square
	Cols int // Width in cells
	Rows int // Height in cells
}

// NewViewport fits a square viewport inside the w x h cell area at (x, y).
func NewViewport(x, y, w, h int) Viewport {
	rows := h
	if w/CellAspect < rows {
		rows = w / CellAspect
	}
	if rows < 1 {
		rows = 1
	}
	cols := rows * CellAspect

	return Viewport{
		X:    x + (w-cols)/2,
		Y:    y + (h-rows)/2,
		Cols: cols,
		Rows: rows,
	}
}

// ToNDC converts the center of cell (col, row) to normalized coordinates.
// Screen rows grow downward, so y is flipped.
func (v Viewport) ToNDC(col, row int) Point {
	fx := (float64(col-v.X) + 0.5) / float64(v.Cols)
	fy := (float64(row-v.Y) + 0.5) / float64(v.Rows)
	return Point{
		X: fx*2 - 1,
		Y: -(fy*2 - 1),
	}
}

// ToCell converts a point to the cell containing it. The result may lie
// outside the viewport; use Contains to check.
func (v Viewport) ToCell(p Point) (col, row int) {
	col = v.X + int(math.Floor((p.X+1)/2*float64(v.Cols)))
	row = v.Y + int(math.Floor((1-p.Y)/2*float64(v.Rows)))
	return col, row
}

// Contains reports whether cell (col, row) is inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}

// ScaleX returns how many columns an NDC length spans horizontally.
func (v Viewport) ScaleX(length float64) float64 {
	return length / 2 * float64(v.Cols)
}

// ScaleY returns how many rows an NDC length spans vertically.
func (v Viewport) ScaleY(length float64) float64 {
	return length / 2 * float64(v.Rows)
}
