package tui

import (
	"testing"
	"time"

	"github.com/pixelpit/brickout/internal/core"
)

func TestPollerIdle(t *testing.T) {
	p := NewKeyPoller()
	if got := p.Sample(); got != (core.InputIntent{}) {
		t.Errorf("idle sample = %+v, want zero intent", got)
	}
}

func TestPollerDirectionHold(t *testing.T) {
	p := NewKeyPoller()
	p.Press(core.DirLeft)

	if got := p.Sample().Dir; got != core.DirLeft {
		t.Errorf("dir = %v immediately after press, want left", got)
	}
	// Direction holds across samples while within the TTL.
	if got := p.Sample().Dir; got != core.DirLeft {
		t.Errorf("dir = %v on second sample, want left", got)
	}

	time.Sleep(holdTTL + 30*time.Millisecond)
	if got := p.Sample().Dir; got != core.DirNone {
		t.Errorf("dir = %v after TTL expiry, want none", got)
	}
}

func TestPollerDirectionReplaced(t *testing.T) {
	p := NewKeyPoller()
	p.Press(core.DirLeft)
	p.Press(core.DirRight)

	if got := p.Sample().Dir; got != core.DirRight {
		t.Errorf("dir = %v, want the most recent press", got)
	}
}

func TestPollerActionLatch(t *testing.T) {
	p := NewKeyPoller()
	p.PressAction()

	// One tap is exactly one intent, however late the sample comes.
	if !p.Sample().Action {
		t.Error("action press lost before first sample")
	}
	if p.Sample().Action {
		t.Error("action press reported twice")
	}
}

func TestPollerActionIndependentOfDirection(t *testing.T) {
	p := NewKeyPoller()
	p.Press(core.DirRight)
	p.PressAction()

	got := p.Sample()
	if got.Dir != core.DirRight || !got.Action {
		t.Errorf("sample = %+v, want right+action", got)
	}
}
