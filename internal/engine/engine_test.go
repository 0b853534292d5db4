package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixelpit/brickout/internal/breakout"
	"github.com/pixelpit/brickout/internal/config"
	"github.com/pixelpit/brickout/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 100, FPS: 60}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// countingPresenter records every presented frame.
type countingPresenter struct {
	mu     sync.Mutex
	frames int
	last   string
}

func (p *countingPresenter) Present(fb *core.FrameBuffer) error {
	if fb.Released() {
		return core.ErrReleased
	}
	p.mu.Lock()
	p.frames++
	p.last = fb.String()
	p.mu.Unlock()
	return nil
}

func (p *countingPresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// failingPresenter fails on every transfer.
type failingPresenter struct{ err error }

func (p *failingPresenter) Present(*core.FrameBuffer) error { return p.err }

// stalledPresenter blocks every transfer until released.
type stalledPresenter struct{ unblock chan struct{} }

func (p *stalledPresenter) Present(*core.FrameBuffer) error {
	<-p.unblock
	return nil
}

func TestEngineRunsAndPresents(t *testing.T) {
	pres := &countingPresenter{}
	e, err := New(testRuntime(), config.Default(), nil, pres, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if err := e.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	stats := e.Stats()
	if stats.Ticks == 0 {
		t.Error("expected simulation ticks to advance")
	}
	if pres.count() == 0 {
		t.Error("expected at least one presented frame")
	}
	if !e.Released() {
		t.Error("frame buffer must be released after Stop")
	}
}

func TestEngineSnapshotIsComplete(t *testing.T) {
	pres := &countingPresenter{}
	e, err := New(testRuntime(), config.Default(), nil, pres, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap := e.Latest()
	if snap == nil {
		t.Fatal("Latest returned nil before Start")
	}
	if snap.Wall == nil || len(snap.Wall.Bricks) == 0 {
		t.Fatal("snapshot missing wall")
	}
	if snap.Phase != breakout.PhaseSplash {
		t.Errorf("initial phase = %v, want splash", snap.Phase)
	}

	// Mutating the snapshot must not touch the live state.
	snap.Wall.Bricks[0].Alive = false
	snap.Score = 999

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := e.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	fresh := e.Latest()
	if fresh.Score == 999 {
		t.Error("snapshot mutation leaked into the live state")
	}
	if !fresh.Wall.Bricks[0].Alive {
		t.Error("snapshot wall mutation leaked into the live state")
	}
}

func TestEngineSimulationOutrunsStalledPresenter(t *testing.T) {
	pres := &stalledPresenter{unblock: make(chan struct{})}
	e, err := New(testRuntime(), config.Default(), nil, pres, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	time.Sleep(150 * time.Millisecond)
	early := e.Stats().Ticks
	time.Sleep(150 * time.Millisecond)
	late := e.Stats().Ticks

	if late <= early {
		t.Errorf("simulation stalled behind a blocked presenter: %d -> %d ticks", early, late)
	}

	close(pres.unblock)
	if err := e.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestEnginePresentFaultHalts(t *testing.T) {
	wantErr := errors.New("display transfer timeout")
	e, err := New(testRuntime(), config.Default(), nil, &failingPresenter{err: wantErr}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-e.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not halt on present fault")
	}

	if err := e.Stop(); !errors.Is(err, wantErr) {
		t.Errorf("Stop error = %v, want wrapped %v", err, wantErr)
	}
	if !e.Released() {
		t.Error("frame buffer must be released on the fault path")
	}
}

func TestEngineQuitOnAction(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.QuitOnAction = true
	cfg.Gameplay.ServeDelayMS = 0

	// Action held down: the first press starts play, the next quits.
	poller := core.PollerFunc(func() core.InputIntent {
		return core.InputIntent{Action: true}
	})

	e, err := New(testRuntime(), cfg, poller, &countingPresenter{}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-e.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not quit on action press during play")
	}

	if err := e.Stop(); err != nil {
		t.Errorf("Stop after quit: %v", err)
	}
}

func TestEngineReleaseThenReinit(t *testing.T) {
	for cycle := 0; cycle < 2; cycle++ {
		e, err := New(testRuntime(), config.Default(), nil, &countingPresenter{}, quietLogger())
		if err != nil {
			t.Fatalf("cycle %d: New: %v", cycle, err)
		}
		if err := e.Start(context.Background()); err != nil {
			t.Fatalf("cycle %d: Start: %v", cycle, err)
		}
		time.Sleep(50 * time.Millisecond)
		if err := e.Stop(); err != nil {
			t.Fatalf("cycle %d: Stop: %v", cycle, err)
		}
		if !e.Released() {
			t.Fatalf("cycle %d: buffer not released before reinit", cycle)
		}
	}
}

func TestEngineStopIdempotent(t *testing.T) {
	e, err := New(testRuntime(), config.Default(), nil, &countingPresenter{}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}
	if err := e.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestEngineDoubleStart(t *testing.T) {
	e, err := New(testRuntime(), config.Default(), nil, &countingPresenter{}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer e.Stop()

	if err := e.Start(context.Background()); err == nil {
		t.Error("second Start should fail")
	}
}

func TestEngineRequiresPresenter(t *testing.T) {
	if _, err := New(testRuntime(), config.Default(), nil, nil, quietLogger()); err == nil {
		t.Error("New without presenter should fail")
	}
}
