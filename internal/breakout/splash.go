package breakout

import "github.com/pixelpit/brickout/internal/core"

// Phase overlay bitmaps. Each entry is one row of a 22-column block image;
// set bits become colored cells. The values are the original cabinet logos
// for the start, game-over and win screens.
var (
	splashBitmap   = []uint32{0x060046, 0x056B54, 0x054A64, 0x064A46, 0x054A62, 0x054A52, 0x074B56}
	gameOverBitmap = []uint32{0x0276DC, 0x025490, 0x025494, 0x0256DC, 0x025298, 0x025294, 0x0376D4}
	winBitmap      = []uint32{0x04548, 0x04548, 0x04568, 0x05578, 0x05558, 0x05548, 0x03948}
)

// bitmapCols is the fixed width of the overlay bitmaps.
const bitmapCols = 22

// bitmapRowColor shades overlay rows red on top, yellow in the middle and
// green at the bottom.
func bitmapRowColor(row int) core.Color {
	switch {
	case row <= 1:
		return core.ColorRed
	case row <= 4:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// drawBitmap renders a block bitmap with its top-left corner at (x, y).
func drawBitmap(fb *core.FrameBuffer, rows []uint32, x, y int) {
	for row, bits := range rows {
		color := bitmapRowColor(row)
		for col := 0; col < bitmapCols; col++ {
			// Bit 0 of the row value is the rightmost column.
			if bits&(1<<uint(bitmapCols-1-col)) != 0 {
				fb.Set(x+col, y+row, '█', color)
			}
		}
	}
}

// drawBitmapCentered renders a block bitmap horizontally centered at row y.
func drawBitmapCentered(fb *core.FrameBuffer, rows []uint32, y int) {
	drawBitmap(fb, rows, (fb.Width()-bitmapCols)/2, y)
}
