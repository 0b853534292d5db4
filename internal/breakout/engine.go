package breakout

import (
	"github.com/pixelpit/brickout/internal/config"
	"github.com/pixelpit/brickout/internal/core"
)

// Result reports the side effects of one tick that the scheduler must act
// on. The state itself carries everything the renderer needs.
type Result struct {
	// Quit is set when the action button doubles as a quit signal and was
	// pressed during play.
	Quit bool
}

// Advance moves the world forward by dtMS milliseconds under the sampled
// input intent. It is deterministic with respect to its inputs and keeps no
// hidden state: the same state, delta and intent always produce the same
// next state.
//
// Malformed inputs never halt the loop: a non-positive delta integrates as
// one millisecond, an overrun delta is capped at MaxDeltaMS (no catch-up
// ticks), and velocity components are clamped into range every tick.
func Advance(s *State, dtMS int, in core.InputIntent, cfg config.Config) Result {
	s.Tick++

	if dtMS <= 0 {
		dtMS = 1
	}
	if max := cfg.Physics.MaxDeltaMS; max > 0 && dtMS > max {
		dtMS = max
	}

	switch s.Phase {
	case PhaseSplash:
		if in.Action {
			s.resetRound(cfg)
			s.Phase = PhasePlaying
			s.beginServe(cfg)
		}
		return Result{}

	case PhaseGameOver, PhaseWin:
		if in.Action {
			s.resetRound(cfg)
			s.Phase = PhaseSplash
		}
		return Result{}
	}

	// Playing.
	if in.Action && cfg.Gameplay.QuitOnAction {
		return Result{Quit: true}
	}

	movePaddle(s, dtMS, in.Dir, cfg)

	// Serve debounce: the ball rides the paddle until the delay expires.
	if s.ServeDelayMS > 0 {
		s.ServeDelayMS -= dtMS
		s.Ball.X = s.Paddle.CenterX()
		s.Ball.Y = ToFixed(s.Paddle.Y) - s.Ball.R - Scale/2
		if s.ServeDelayMS <= 0 {
			s.ServeDelayMS = 0
			s.launchBall(cfg)
		}
		return Result{}
	}

	s.Ball.ClampSpeed(Fixed(cfg.Physics.MaxBallSpeed))
	s.Ball.Move(dtMS)

	if missed := collideWalls(s); missed {
		s.Lives--
		if s.Lives <= 0 {
			s.Phase = PhaseGameOver
			return Result{}
		}
		s.beginServe(cfg)
		return Result{}
	}

	collidePaddle(s, cfg)
	collideBricks(s, cfg)

	if s.Wall.CountAlive() == 0 {
		s.Phase = PhaseWin
	}
	return Result{}
}

// movePaddle applies the sampled direction over the elapsed delta and clamps
// the paddle to the playfield.
func movePaddle(s *State, dtMS int, dir core.Direction, cfg config.Config) {
	step := Fixed(cfg.Physics.PaddleSpeed).Integrate(dtMS)
	switch dir {
	case core.DirLeft:
		s.Paddle.X -= step
	case core.DirRight:
		s.Paddle.X += step
	}
	s.Paddle.X = ClampFixed(s.Paddle.X, 0, ToFixed(s.ScreenW-s.Paddle.Width))
}

// collideWalls reflects the ball off the side and top bounds, clamping the
// position onto the boundary so it can neither stick nor escape. Returns
// true when the ball crossed the bottom bound (a miss).
func collideWalls(s *State) (missed bool) {
	left := s.Ball.R
	right := ToFixed(s.ScreenW) - s.Ball.R
	top := ToFixed(s.Wall.Top) + s.Ball.R

	if s.Ball.X < left {
		s.Ball.X = left
		s.Ball.VX = s.Ball.VX.Abs()
	} else if s.Ball.X > right {
		s.Ball.X = right
		s.Ball.VX = -s.Ball.VX.Abs()
	}

	if s.Ball.Y < top {
		s.Ball.Y = top
		s.Ball.VY = s.Ball.VY.Abs()
	}

	return s.Ball.Y-s.Ball.R > ToFixed(s.ScreenH)
}

// collidePaddle handles the skill mechanic: a descending ball striking the
// paddle rebounds upward with a horizontal velocity that is a continuous,
// monotonic function of the impact offset from the paddle center. A center
// hit rebounds straight up; edge hits rebound at the steepest angle.
func collidePaddle(s *State, cfg config.Config) {
	if s.Ball.VY <= 0 {
		return
	}
	if !circleIntersectsRect(s.Ball.X, s.Ball.Y, s.Ball.R, s.Paddle.Rect()) {
		return
	}

	halfWidth := ToFixed(s.Paddle.Width) / 2
	offset := s.Ball.X - s.Paddle.CenterX()
	norm := ClampFixed(Fixed(int64(offset)*Scale/int64(core.Max(int(halfWidth), 1))), -Scale, Scale)

	speed := Fixed(cfg.Physics.BallSpeed)
	s.Ball.VX = Fixed(int64(norm) * int64(speed) / Scale)
	s.Ball.VY = -s.Ball.VY.Abs()
	if s.Ball.VY > -speed/2 {
		s.Ball.VY = -speed / 2
	}

	// Lift the ball clear of the paddle so one contact bounces once.
	s.Ball.Y = ToFixed(s.Paddle.Y) - s.Ball.R - Scale/2
}

// collideBricks scans alive bricks in row-major order and resolves the first
// intersection only: the brick dies, the score increases by the per-brick
// value, and the velocity component perpendicular to the struck face is
// reflected. One brick per tick even when the ball overlaps two neighbors;
// the row-major scan is the deterministic tie-break.
func collideBricks(s *State, cfg config.Config) {
	for i := range s.Wall.Bricks {
		if !s.Wall.Bricks[i].Alive {
			continue
		}
		rect := s.Wall.BrickRect(i)
		if !circleIntersectsRect(s.Ball.X, s.Ball.Y, s.Ball.R, rect) {
			continue
		}
		s.Wall.Bricks[i].Alive = false
		s.Score += cfg.Gameplay.BrickPoints
		applyBounce(&s.Ball, reflectAxis(&s.Ball, rect))
		return
	}
}
