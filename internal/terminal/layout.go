package terminal

import "wordbow/internal/game"

// One terminal cell covers cellWidth × cellHeight field units. The first row
// holds the HUD and the last row the key help, the rest is the play field.
const (
	cellWidth  = 10.0
	cellHeight = 20.0

	hudRows    = 1
	footerRows = 1
)

// layout maps field units to screen cells for one screen size
type layout struct {
	cols, rows int
}

func (l layout) fieldRows() int {
	return max(l.rows-hudRows-footerRows, 1)
}

func (l layout) field() game.Field {
	return game.Field{
		Width:  float64(l.cols) * cellWidth,
		Height: float64(l.fieldRows()) * cellHeight,
	}
}

func (l layout) col(x float64) int {
	return int(x / cellWidth)
}

func (l layout) row(y float64) int {
	return hudRows + int(y/cellHeight)
}

// unitY returns the field y at the middle of screen row r, clamped to the field
func (l layout) unitY(r int) float64 {
	r = min(max(r-hudRows, 0), l.fieldRows()-1)
	return float64(r)*cellHeight + cellHeight/2
}

func (l layout) inField(r int) bool {
	return r >= hudRows && r < hudRows+l.fieldRows()
}
