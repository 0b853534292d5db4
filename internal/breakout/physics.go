package breakout

import "github.com/pixelpit/brickout/internal/core"

// Fixed-point scale factor: 1 cell = 1000 units. Positions and velocities
// stay in integers for sub-cell precision with deterministic arithmetic.
const Scale = 1000

// Fixed represents a fixed-point coordinate or velocity (scaled by Scale).
// Velocities are milli-cells per second and are integrated over elapsed
// milliseconds, so a tick that overruns simply covers more distance.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to a cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// Integrate returns the displacement covered by velocity f over dtMS
// milliseconds. Computed in 64-bit to avoid overflow on large deltas.
func (f Fixed) Integrate(dtMS int) Fixed {
	return Fixed(int64(f) * int64(dtMS) / 1000)
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Ball is the ball state: center position, velocity and collision radius.
type Ball struct {
	X, Y   Fixed // Center position
	VX, VY Fixed // Velocity, milli-cells per second
	R      Fixed // Bounding circle radius
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move advances the ball by its velocity over dtMS milliseconds.
func (b *Ball) Move(dtMS int) {
	b.X += b.VX.Integrate(dtMS)
	b.Y += b.VY.Integrate(dtMS)
}

// ClampSpeed bounds each velocity component to [-max, max]. This is both the
// anti-tunneling invariant and the recovery path for out-of-range samples: a
// bad velocity is pulled back into range instead of propagating an error.
func (b *Ball) ClampSpeed(max Fixed) {
	if max <= 0 {
		return
	}
	b.VX = ClampFixed(b.VX, -max, max)
	b.VY = ClampFixed(b.VY, -max, max)
}

// Paddle is the player's paddle: a fixed row near the bottom with a
// fixed-point horizontal position.
type Paddle struct {
	X      Fixed // Left edge, fixed-point
	Y      int   // Top cell row
	Width  int   // Width in cells
	Height int   // Height in cells
}

// CellX returns the paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns the paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X + ToFixed(p.Width)/2
}

// Rect returns the paddle's bounding rectangle in cell coordinates.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.CellX(), p.Y, p.Width, p.Height)
}

// Axis identifies which axis a reflection applies to.
type Axis int

const (
	AxisNone Axis = iota
	AxisX         // Reflect horizontal velocity (vertical face struck)
	AxisY         // Reflect vertical velocity (horizontal face struck)
)

// circleIntersectsRect reports whether a circle at (cx, cy) with radius r
// overlaps a cell-coordinate rectangle.
func circleIntersectsRect(cx, cy, r Fixed, rect core.Rect) bool {
	nx := ClampFixed(cx, ToFixed(rect.X), ToFixed(rect.Right()))
	ny := ClampFixed(cy, ToFixed(rect.Y), ToFixed(rect.Bottom()))
	dx := int64(cx - nx)
	dy := int64(cy - ny)
	return dx*dx+dy*dy <= int64(r)*int64(r)
}

// reflectAxis decides which velocity component a rectangle hit reflects.
// The ball reflects the component perpendicular to the struck face; with
// axis-aligned rectangles that is whichever axis produced the penetration,
// resolved by nearest edge with a bias toward the dominant motion direction.
func reflectAxis(ball *Ball, rect core.Rect) Axis {
	distLeft := (ball.X - ToFixed(rect.X)).Abs()
	distRight := (ball.X - ToFixed(rect.Right())).Abs()
	distTop := (ball.Y - ToFixed(rect.Y)).Abs()
	distBottom := (ball.Y - ToFixed(rect.Bottom())).Abs()

	minHoriz := distLeft
	if distRight < minHoriz {
		minHoriz = distRight
	}
	minVert := distTop
	if distBottom < minVert {
		minVert = distBottom
	}

	if ball.VY.Abs() > ball.VX.Abs() || minVert <= minHoriz {
		return AxisY
	}
	return AxisX
}

// applyBounce reflects the ball's velocity along the given axis.
func applyBounce(ball *Ball, axis Axis) {
	switch axis {
	case AxisX:
		ball.VX = -ball.VX
	case AxisY:
		ball.VY = -ball.VY
	}
}
