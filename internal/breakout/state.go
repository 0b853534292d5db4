// Package breakout implements the game simulation: world state, fixed-point
// physics, deterministic collision resolution and rasterization. Everything
// here is single-threaded by contract; concurrency lives in the engine
// package, which owns the live state and publishes read-only clones.
package breakout

import "github.com/pixelpit/brickout/internal/config"

// Phase is the top-level game state machine value. Exactly one phase is
// active at a time.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseWin
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// State is the authoritative world snapshot: ball, paddle, wall, score,
// lives and phase. The simulation goroutine owns the live value exclusively;
// the renderer only ever sees clones.
type State struct {
	Phase  Phase
	Ball   Ball
	Paddle Paddle
	Wall   *Wall
	Score  int
	Lives  int
	Tick   uint64

	ScreenW, ScreenH int

	// ServeDelayMS counts down after a miss before the ball relaunches,
	// debouncing the transition back into play.
	ServeDelayMS int
}

// NewState builds the initial world for the given surface size: full wall,
// centered paddle, ball at serve position, splash phase.
func NewState(screenW, screenH int, cfg config.Config) *State {
	s := &State{
		Phase:   PhaseSplash,
		ScreenW: screenW,
		ScreenH: screenH,
		Lives:   cfg.Gameplay.Lives,
	}
	s.Wall = NewWall(screenW, cfg.Wall)
	s.Paddle = Paddle{
		X:      ToFixed((screenW - cfg.Paddle.Width) / 2),
		Y:      screenH - cfg.Paddle.Height - 1,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
	s.placeBallOnPaddle(cfg)
	return s
}

// placeBallOnPaddle rests the ball at the serve position above the paddle
// center with zero velocity.
func (s *State) placeBallOnPaddle(cfg config.Config) {
	s.Ball = Ball{
		X: s.Paddle.CenterX(),
		Y: ToFixed(s.Paddle.Y) - Fixed(cfg.Physics.BallRadius) - Scale/2,
		R: Fixed(cfg.Physics.BallRadius),
	}
}

// launchBall serves the ball upward with a slight horizontal bias so play
// never starts perfectly vertical.
func (s *State) launchBall(cfg config.Config) {
	speed := Fixed(cfg.Physics.BallSpeed)
	s.Ball.VX = speed / 4
	s.Ball.VY = -speed
}

// beginServe puts the ball into the serve position and either arms the serve
// delay or, with no delay configured, launches immediately.
func (s *State) beginServe(cfg config.Config) {
	s.placeBallOnPaddle(cfg)
	if cfg.Gameplay.ServeDelayMS > 0 {
		s.ServeDelayMS = cfg.Gameplay.ServeDelayMS
		return
	}
	s.ServeDelayMS = 0
	s.launchBall(cfg)
}

// resetRound restores a fresh round: full wall, zero score, configured
// lives, ball waiting at the serve position.
func (s *State) resetRound(cfg config.Config) {
	s.Wall = NewWall(s.ScreenW, config.Wall{Rows: s.Wall.Rows, Cols: s.Wall.Cols, Top: s.Wall.Top})
	s.Score = 0
	s.Lives = cfg.Gameplay.Lives
	s.Paddle.X = ToFixed((s.ScreenW - s.Paddle.Width) / 2)
	s.placeBallOnPaddle(cfg)
	s.ServeDelayMS = 0
}

// Clone returns a complete deep copy of the state, safe to read concurrently
// with further mutation of the live value.
func (s *State) Clone() *State {
	clone := *s
	clone.Wall = s.Wall.Clone()
	return &clone
}
