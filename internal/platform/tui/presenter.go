package tui

import (
	"sync"

	"github.com/pixelpit/brickout/internal/core"
)

// ScreenPresenter turns presented frames into styled terminal strings. The
// engine's render goroutine pushes frames in via Present; the UI goroutine
// pulls the latest with Frame. This keeps the display transfer decoupled
// from the terminal's own refresh cadence.
type ScreenPresenter struct {
	mu    sync.Mutex
	frame string
}

// NewScreenPresenter creates an empty presenter.
func NewScreenPresenter() *ScreenPresenter {
	return &ScreenPresenter{}
}

// Present rasterizes the buffer into a styled string and stores it as the
// latest frame. Fails if the buffer's backing memory was already released.
func (p *ScreenPresenter) Present(fb *core.FrameBuffer) error {
	if fb.Released() {
		return core.ErrReleased
	}
	rendered := RenderFrame(fb)

	p.mu.Lock()
	p.frame = rendered
	p.mu.Unlock()
	return nil
}

// Frame returns the most recently presented frame.
func (p *ScreenPresenter) Frame() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}
