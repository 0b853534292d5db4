package config

import (
	_ "embed"
)

//go:embed defaults/brickout.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Physics: Physics{
			BallSpeed:    16000, // 16 cells per second
			MaxBallSpeed: 40000,
			PaddleSpeed:  36000,
			BallRadius:   400,
			MaxDeltaMS:   100,
		},
		Paddle: Paddle{
			Width:  9,
			Height: 1,
		},
		Wall: Wall{
			Rows: 4,
			Cols: 10,
			Top:  2,
		},
		Gameplay: Gameplay{
			Lives:        3,
			BrickPoints:  10,
			ServeDelayMS: 1000,
			QuitOnAction: false,
		},
	}
}
