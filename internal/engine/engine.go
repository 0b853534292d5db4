// Package engine drives the game in real time: a simulation goroutine that
// owns the live world state and ticks the collision engine, and a render
// goroutine that rasterizes the latest published snapshot and presents it.
//
// Goroutine topology:
//   - 1 simulation loop (spawned by Start, stopped by Stop or a quit request)
//   - 1 render loop (spawned by Start, stopped by Stop or a fatal present fault)
//
// The two sides share exactly one thing: a single snapshot slot holding a
// complete, immutable copy of the world published after every tick. The
// renderer always reads the latest value and may skip ticks; the simulation
// never waits for the renderer.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixelpit/brickout/internal/breakout"
	"github.com/pixelpit/brickout/internal/config"
	"github.com/pixelpit/brickout/internal/core"
)

// Presenter is the opaque display transfer. Present blocks for the duration
// of the hardware (or terminal) transfer of the full surface. A returned
// error is unrecoverable: a game that simulates without rendering is useless
// to the player, so the engine halts and tears down.
type Presenter interface {
	Present(fb *core.FrameBuffer) error
}

// Stats are cumulative counters for one engine run.
type Stats struct {
	Ticks           uint64 // Simulation ticks executed
	FramesPresented uint64 // Snapshots actually transferred to the display
	FramesSkipped   uint64 // Render passes that found no newer snapshot
}

// Engine owns the lifecycle of the simulation and render goroutines and the
// frame buffer's backing memory.
type Engine struct {
	runtime core.RuntimeConfig
	cfg     config.Config

	poller    core.Poller
	presenter Presenter
	logger    *log.Logger

	fb   *core.FrameBuffer
	live *breakout.State // Owned exclusively by the simulation loop

	// snapshot is the single shared slot: written only by the simulation
	// loop, read only by the render loop. Every stored value is a complete
	// clone, so a reader can never observe a partially updated tick.
	snapshot atomic.Pointer[breakout.State]

	ticks           atomic.Uint64
	framesPresented atomic.Uint64
	framesSkipped   atomic.Uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
	fatal   error
}

// New allocates the frame buffer and the initial world state. The caller
// must eventually call Stop, which releases the buffer; constructing a new
// engine without stopping the previous one leaks a surface, which on a
// memory-starved target is fatal across crash/restart cycles.
func New(runtime core.RuntimeConfig, cfg config.Config, poller core.Poller, presenter Presenter, logger *log.Logger) (*Engine, error) {
	if presenter == nil {
		return nil, errors.New("engine: presenter is required")
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "brickout"})
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultRuntimeConfig().TickRate
	}
	if runtime.FPS <= 0 {
		runtime.FPS = core.DefaultRuntimeConfig().FPS
	}

	fb, err := core.NewFrameBuffer(runtime.ScreenW, runtime.ScreenH)
	if err != nil {
		return nil, fmt.Errorf("engine: allocating frame buffer: %w", err)
	}

	e := &Engine{
		runtime:   runtime,
		cfg:       cfg,
		poller:    poller,
		presenter: presenter,
		logger:    logger,
		fb:        fb,
		live:      breakout.NewState(runtime.ScreenW, runtime.ScreenH, cfg),
	}
	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.snapshot.Store(e.live.Clone())
	return e, nil
}

// Start spawns the simulation and render loops. It returns immediately;
// the loops run until Stop, a quit request, or a fatal render fault.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return errors.New("engine: already started")
	}
	e.started = true

	// Re-root the run under the caller's context so external cancellation
	// propagates to both loops.
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.logger.Info("engine starting",
		"surface", fmt.Sprintf("%dx%d", e.runtime.ScreenW, e.runtime.ScreenH),
		"tick_rate", e.runtime.TickRate,
		"fps", e.runtime.FPS,
	)

	e.wg.Add(2)
	go e.simLoop()
	go e.renderLoop()
	return nil
}

// Stop halts both loops and releases the frame buffer's backing memory.
// Idempotent; safe to call from any goroutine. Returns the fatal error that
// halted the engine, if any.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if e.stopped {
		fatal := e.fatal
		e.mu.Unlock()
		return fatal
	}
	e.stopped = true
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()

	// Teardown before any reinit path: the surface memory must be
	// reclaimed on every exit, including the fault paths.
	e.fb.Release()
	e.logger.Info("engine stopped", "ticks", e.ticks.Load(), "frames", e.framesPresented.Load())

	e.mu.Lock()
	fatal := e.fatal
	e.mu.Unlock()
	return fatal
}

// Done is closed when the engine is shutting down, whether from Stop, a
// quit-on-action press, or a fatal render fault.
func (e *Engine) Done() <-chan struct{} {
	return e.ctx.Done()
}

// Err returns the fatal error that halted the engine, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fatal
}

// Latest returns the most recently published snapshot. Never nil.
func (e *Engine) Latest() *breakout.State {
	return e.snapshot.Load()
}

// Stats returns the cumulative counters for this run.
func (e *Engine) Stats() Stats {
	return Stats{
		Ticks:           e.ticks.Load(),
		FramesPresented: e.framesPresented.Load(),
		FramesSkipped:   e.framesSkipped.Load(),
	}
}

// Released reports whether the frame buffer backing memory has been
// reclaimed.
func (e *Engine) Released() bool {
	return e.fb.Released()
}

// simLoop ticks the collision engine at the target cadence and publishes a
// complete snapshot after every tick. When a tick overruns, the next tick
// integrates the larger measured delta instead of attempting catch-up ticks.
func (e *Engine) simLoop() {
	defer e.wg.Done()

	ticker := time.NewTicker(time.Second / time.Duration(e.runtime.TickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.ctx.Done():
			return
		case now := <-ticker.C:
			dt := int(now.Sub(last).Milliseconds())
			last = now

			res := breakout.Advance(e.live, dt, e.sampleInput(), e.cfg)
			e.snapshot.Store(e.live.Clone())
			e.ticks.Add(1)

			if res.Quit {
				e.logger.Info("quit requested by action press")
				e.cancel()
				return
			}
		}
	}
}

// renderLoop rasterizes and presents the latest snapshot at its own cadence,
// bounded below by the blocking present call. Ticks with no newer snapshot
// are skipped; simulated ticks the renderer never sees are simply dropped.
func (e *Engine) renderLoop() {
	defer e.wg.Done()

	ticker := time.NewTicker(time.Second / time.Duration(e.runtime.FPS))
	defer ticker.Stop()

	var lastPresented uint64
	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			snap := e.snapshot.Load()
			if snap.Tick == lastPresented && lastPresented != 0 {
				e.framesSkipped.Add(1)
				continue
			}

			breakout.Render(snap, e.fb)
			if err := e.presenter.Present(e.fb); err != nil {
				e.setFatal(fmt.Errorf("engine: display transfer failed: %w", err))
				e.logger.Error("render fault, halting", "err", err)
				e.cancel()
				return
			}
			lastPresented = snap.Tick
			e.framesPresented.Add(1)
		}
	}
}

// sampleInput reads the poller; a missing device is a safe zero intent.
func (e *Engine) sampleInput() core.InputIntent {
	if e.poller == nil {
		return core.InputIntent{}
	}
	return e.poller.Sample()
}

// setFatal records the first fatal error.
func (e *Engine) setFatal(err error) {
	e.mu.Lock()
	if e.fatal == nil {
		e.fatal = err
	}
	e.mu.Unlock()
}
