// Package config provides YAML-based configuration for the game: physics
// tuning, wall layout, gameplay rules and the behavior toggles loaded once at
// startup. Loaded values are passed into constructors and never re-read
// mid-run.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Paddle   Paddle   `yaml:"paddle"`
	Wall     Wall     `yaml:"wall"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Physics defines motion parameters. Speeds are milli-cells per second
// (1000 = one cell per second); distances are milli-cells.
type Physics struct {
	BallSpeed    int `yaml:"ball_speed"`     // Launch speed of the ball
	MaxBallSpeed int `yaml:"max_ball_speed"` // Per-component velocity clamp (anti-tunneling)
	PaddleSpeed  int `yaml:"paddle_speed"`   // Paddle travel speed
	BallRadius   int `yaml:"ball_radius"`    // Collision radius of the ball
	MaxDeltaMS   int `yaml:"max_delta_ms"`   // Largest elapsed delta a single tick will integrate
}

// Paddle defines the paddle dimensions in cells.
type Paddle struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Wall defines the brick wall grid. Brick rectangles are derived from the
// grid index at runtime; only the alive flags mutate after generation.
type Wall struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	Top  int `yaml:"top"` // First brick row on the surface (rows above are HUD)
}

// Gameplay defines rules and the startup behavior toggles.
type Gameplay struct {
	Lives        int  `yaml:"lives"`
	BrickPoints  int  `yaml:"brick_points"`
	ServeDelayMS int  `yaml:"serve_delay_ms"` // Debounce after a miss before the ball re-serves
	QuitOnAction bool `yaml:"quit_on_action"` // Action press during play tears the game down
}

// DifficultyPreset is a named difficulty level selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown values map to empty.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts gameplay parameters for a difficulty preset. The fixed
// preset leaves the loaded config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 12
		cfg.Physics.BallSpeed = 12000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 22000
	}
}
