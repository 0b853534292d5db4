package tui

import (
	"sync"
	"time"

	"github.com/pixelpit/brickout/internal/core"
)

// holdTTL is how long a direction press stays asserted after the last key
// event. Terminals only deliver key-down (plus autorepeat), never key-up, so
// a held arrow key shows up as a stream of events; the TTL bridges the gaps
// between autorepeat events and releases the direction shortly after the
// player lets go.
const holdTTL = 150 * time.Millisecond

// KeyPoller converts terminal key events into sampled input intents. Key
// events arrive on the UI goroutine; Sample is called from the simulation
// goroutine. The action press is latched until the next sample so a tap
// between two ticks is never lost, and sampling consumes it so one tap maps
// to exactly one intent.
type KeyPoller struct {
	mu       sync.Mutex
	dir      core.Direction
	deadline time.Time
	action   bool
}

// NewKeyPoller creates an idle poller.
func NewKeyPoller() *KeyPoller {
	return &KeyPoller{}
}

// Press records a direction key event.
func (p *KeyPoller) Press(dir core.Direction) {
	p.mu.Lock()
	p.dir = dir
	p.deadline = time.Now().Add(holdTTL)
	p.mu.Unlock()
}

// PressAction latches the action button until the next sample.
func (p *KeyPoller) PressAction() {
	p.mu.Lock()
	p.action = true
	p.mu.Unlock()
}

// Sample returns the current debounced intent. Non-blocking.
func (p *KeyPoller) Sample() core.InputIntent {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dir != core.DirNone && time.Now().After(p.deadline) {
		p.dir = core.DirNone
	}

	intent := core.InputIntent{Dir: p.dir, Action: p.action}
	p.action = false
	return intent
}
