package breakout

import (
	"github.com/pixelpit/brickout/internal/config"
	"github.com/pixelpit/brickout/internal/core"
)

// Brick is one cell of the wall. The layout is immutable once generated;
// only Alive mutates.
type Brick struct {
	Row, Col int
	Alive    bool
}

// Wall is the fixed rows x cols brick grid. Bricks are stored in row-major
// order, which is also the documented collision scan and tie-break order.
type Wall struct {
	Rows, Cols int
	Top        int // First surface row occupied by bricks
	CellW      int // Horizontal cells allotted per brick (including 1 gap)
	Bricks     []Brick
}

// NewWall lays out a brick grid across a surface of the given width.
func NewWall(screenW int, cfg config.Wall) *Wall {
	cellW := screenW / core.Max(cfg.Cols, 1)
	if cellW < 2 {
		cellW = 2
	}
	w := &Wall{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Top:    cfg.Top,
		CellW:  cellW,
		Bricks: make([]Brick, cfg.Rows*cfg.Cols),
	}
	for i := range w.Bricks {
		w.Bricks[i] = Brick{Row: i / w.Cols, Col: i % w.Cols, Alive: true}
	}
	return w
}

// BrickRect returns the bounding rectangle of brick i, derived from its grid
// index. One trailing cell per slot is left as a visual gap.
func (w *Wall) BrickRect(i int) core.Rect {
	b := w.Bricks[i]
	return core.NewRect(b.Col*w.CellW, w.Top+b.Row, w.CellW-1, 1)
}

// CountAlive returns the number of remaining bricks.
func (w *Wall) CountAlive() int {
	count := 0
	for i := range w.Bricks {
		if w.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the wall.
func (w *Wall) Clone() *Wall {
	clone := *w
	clone.Bricks = make([]Brick, len(w.Bricks))
	copy(clone.Bricks, w.Bricks)
	return &clone
}

// RowColor returns the render color for a brick row, top-down red, yellow,
// then green, matching the classic cabinet palette.
func RowColor(row int) core.Color {
	switch {
	case row == 0:
		return core.ColorRed
	case row == 1:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}
