package breakout

import (
	"strings"
	"testing"

	"github.com/pixelpit/brickout/internal/core"
)

func testFrameBuffer(t *testing.T) *core.FrameBuffer {
	t.Helper()
	fb, err := core.NewFrameBuffer(testW, testH)
	if err != nil {
		t.Fatalf("NewFrameBuffer: %v", err)
	}
	return fb
}

func TestRenderPlayingField(t *testing.T) {
	cfg := testConfig()
	s := playingState(t, cfg)
	fb := testFrameBuffer(t)

	Render(s, fb)

	// HUD with score and the separator rule.
	if !strings.Contains(fb.Row(0), "Score: 0") {
		t.Errorf("HUD row missing score: %q", fb.Row(0))
	}
	if !strings.Contains(fb.Row(1), "───") {
		t.Errorf("missing HUD rule: %q", fb.Row(1))
	}

	// Paddle drawn at its cell position.
	paddleRow := fb.Row(s.Paddle.Y)
	if !strings.Contains(paddleRow, strings.Repeat("=", s.Paddle.Width)) {
		t.Errorf("paddle row %d = %q, missing paddle", s.Paddle.Y, paddleRow)
	}

	// Ball glyph at the ball's cell.
	if got := fb.Get(s.Ball.CellX(), s.Ball.CellY()).Rune; got != '●' {
		t.Errorf("ball cell = %q, want ball glyph", got)
	}

	// Brick rows colored top-down red then yellow.
	if got := fb.Get(1, s.Wall.Top).Color; got != core.ColorRed {
		t.Errorf("top brick row color = %v, want red", got)
	}
	if got := fb.Get(1, s.Wall.Top+1).Color; got != core.ColorYellow {
		t.Errorf("second brick row color = %v, want yellow", got)
	}
}

func TestRenderLivesIndicator(t *testing.T) {
	cfg := testConfig()
	s := playingState(t, cfg)
	fb := testFrameBuffer(t)

	Render(s, fb)
	if got := strings.Count(fb.Row(0), "●"); got != s.Lives {
		t.Errorf("HUD shows %d life markers, want %d", got, s.Lives)
	}

	s.Lives = 1
	Render(s, fb)
	if got := strings.Count(fb.Row(0), "●"); got != 1 {
		t.Errorf("HUD shows %d life markers, want 1", got)
	}
}

func TestRenderDeadBricksDisappear(t *testing.T) {
	cfg := testConfig()
	s := playingState(t, cfg)
	fb := testFrameBuffer(t)

	Render(s, fb)
	if fb.Get(1, s.Wall.Top).Rune != '█' {
		t.Fatal("expected brick glyph before the hit")
	}

	s.Wall.Bricks[0].Alive = false
	Render(s, fb)
	if fb.Get(1, s.Wall.Top).Rune == '█' {
		t.Error("dead brick still drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	cfg := testConfig()
	fb := testFrameBuffer(t)

	tests := []struct {
		name  string
		phase Phase
		want  string
	}{
		{"splash prompt", PhaseSplash, "Press SPACE to start"},
		{"game over prompt", PhaseGameOver, "Press SPACE to continue"},
		{"win shows final score", PhaseWin, "Final score:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(testW, testH, cfg)
			s.Phase = tc.phase
			Render(s, fb)
			if !strings.Contains(fb.String(), tc.want) {
				t.Errorf("overlay for %v missing %q", tc.phase, tc.want)
			}
		})
	}
}
