package core

import (
	"errors"
	"strings"
)

// ErrReleased is returned when a frame buffer is used after Release.
var ErrReleased = errors.New("core: frame buffer released")

// Cell is a single frame buffer element: a glyph plus its color.
type Cell struct {
	Rune  rune
	Color Color
}

// FrameBuffer is the fixed-size drawing surface the renderer rasterizes into
// and the presenter transfers to the display. Dimensions are fixed at
// construction. The buffer is owned exclusively by the render side during a
// frame; it carries no locking of its own.
//
// The backing storage must be released exactly once with Release before any
// restart path constructs a new buffer. On a memory-starved target a leaked
// buffer survives a crash/restart cycle and eventually exhausts the device,
// so Release is part of the scheduler's teardown contract, not optional
// cleanup.
type FrameBuffer struct {
	width  int
	height int
	cells  []Cell
}

// NewFrameBuffer allocates a width x height surface cleared to blanks.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("core: frame buffer dimensions must be positive")
	}
	fb := &FrameBuffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	fb.Clear()
	return fb, nil
}

// Width returns the surface width in cells.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the surface height in cells.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Released reports whether the backing storage has been released.
func (fb *FrameBuffer) Released() bool {
	return fb.cells == nil
}

// Release drops the backing storage. Idempotent. Any draw or read after
// Release is a no-op; Present implementations must fail with ErrReleased.
func (fb *FrameBuffer) Release() {
	fb.cells = nil
}

// Clear fills the surface with blank default-colored cells.
func (fb *FrameBuffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = Cell{Rune: ' ', Color: ColorDefault}
	}
}

// Set places a glyph at (x, y). Out-of-bounds coordinates are ignored.
func (fb *FrameBuffer) Set(x, y int, r rune, c Color) {
	if fb.cells == nil || x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.cells[y*fb.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (fb *FrameBuffer) Get(x, y int) Cell {
	if fb.cells == nil || x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return fb.cells[y*fb.width+x]
}

// FillRect fills a rectangular area, clipped to the surface.
func (fb *FrameBuffer) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			fb.Set(x, y, fill, c)
		}
	}
}

// DrawText writes a string horizontally starting at (x, y), clipped.
func (fb *FrameBuffer) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		fb.Set(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (fb *FrameBuffer) DrawTextCentered(y int, text string, c Color) {
	x := (fb.width - len(text)) / 2
	fb.DrawText(x, y, text, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (fb *FrameBuffer) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		fb.Set(x+i, y, r, c)
	}
}

// String renders the buffer as plain text, one row per line. Colors are
// dropped; this form is for tests and debug dumps, not presentation.
func (fb *FrameBuffer) String() string {
	if fb.cells == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(fb.width*fb.height + fb.height)
	for y := 0; y < fb.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < fb.width; x++ {
			sb.WriteRune(fb.cells[y*fb.width+x].Rune)
		}
	}
	return sb.String()
}

// Row returns row y as a plain string.
func (fb *FrameBuffer) Row(y int) string {
	if fb.cells == nil || y < 0 || y >= fb.height {
		return strings.Repeat(" ", fb.width)
	}
	var sb strings.Builder
	sb.Grow(fb.width)
	for x := 0; x < fb.width; x++ {
		sb.WriteRune(fb.cells[y*fb.width+x].Rune)
	}
	return sb.String()
}
