package breakout

import (
	"fmt"

	"github.com/pixelpit/brickout/internal/core"
)

// Glyphs for the playfield.
const (
	paddleChar = '='
	ballChar   = '●'
	brickChar  = '█'
	lifeChar   = '●'
	hudRule    = '─'
)

// Render rasterizes a state snapshot into the frame buffer. The snapshot is
// treated as read-only for the duration of the frame. Draw order: clear,
// bricks, paddle, ball, HUD, phase overlay.
func Render(s *State, fb *core.FrameBuffer) {
	fb.Clear()

	renderBricks(s, fb)
	renderPaddle(s, fb)
	renderBall(s, fb)
	renderHUD(s, fb)
	renderOverlay(s, fb)
}

// renderBricks draws every alive brick, colored by row.
func renderBricks(s *State, fb *core.FrameBuffer) {
	for i := range s.Wall.Bricks {
		b := &s.Wall.Bricks[i]
		if !b.Alive {
			continue
		}
		fb.FillRect(s.Wall.BrickRect(i), brickChar, RowColor(b.Row))
	}
}

// renderPaddle draws the paddle at its cell position.
func renderPaddle(s *State, fb *core.FrameBuffer) {
	fb.FillRect(s.Paddle.Rect(), paddleChar, core.ColorWhite)
}

// renderBall draws the ball unless it is off-surface (between serves).
func renderBall(s *State, fb *core.FrameBuffer) {
	fb.Set(s.Ball.CellX(), s.Ball.CellY(), ballChar, core.ColorWhite)
}

// renderHUD draws score on the left, remaining lives as small balls on the
// right, and a rule between HUD and playfield.
func renderHUD(s *State, fb *core.FrameBuffer) {
	fb.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)

	for i := 0; i < s.Lives; i++ {
		fb.Set(fb.Width()-2-i*2, 0, lifeChar, core.ColorWhite)
	}

	fb.DrawHLine(0, 1, fb.Width(), hudRule, core.ColorGray)
}

// renderOverlay draws the phase-specific screen content on top of the
// playfield.
func renderOverlay(s *State, fb *core.FrameBuffer) {
	switch s.Phase {
	case PhaseSplash:
		top := core.Max(fb.Height()/2-6, 2)
		drawBitmapCentered(fb, splashBitmap, top)
		fb.DrawTextCentered(top+9, "Press SPACE to start", core.ColorWhite)

	case PhaseGameOver:
		top := core.Max(fb.Height()/2-6, 2)
		drawBitmapCentered(fb, gameOverBitmap, top)
		fb.DrawTextCentered(top+9, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)
		fb.DrawTextCentered(top+11, "Press SPACE to continue", core.ColorGray)

	case PhaseWin:
		top := core.Max(fb.Height()/2-6, 2)
		drawBitmapCentered(fb, winBitmap, top)
		fb.DrawTextCentered(top+9, fmt.Sprintf("Final score: %d", s.Score), core.ColorWhite)
		fb.DrawTextCentered(top+11, "Press SPACE to continue", core.ColorGray)

	case PhasePlaying:
		if s.ServeDelayMS > 0 {
			fb.DrawTextCentered(fb.Height()-1, "Get ready...", core.ColorGray)
		}
	}
}
