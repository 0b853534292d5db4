// brickout is a terminal rendition of the classic brick-breaking arcade
// cabinet: knock out the wall, keep the ball off the floor.
//
// Usage:
//
//	brickout                 - Play in the current terminal
//	brickout serve           - Start SSH server for remote play
//
// Global flags:
//
//	--tick-rate <rate>  - Simulation rate in ticks per second (default: 60)
//	--fps <rate>        - Display refresh rate (default: 30)
//	--config <path>     - Path to custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log <path>        - Append structured logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixelpit/brickout/internal/config"
	"github.com/pixelpit/brickout/internal/core"
	"github.com/pixelpit/brickout/internal/platform/tui"
)

var (
	// Global flags
	flagTickRate   int
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickout",
	Short: "Brickout - break the wall in your terminal",
	Long: `Brickout is a terminal brick-breaking game. Running it with no
subcommand starts a game in the current terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Start / serve
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default rules
  hard   - Fewer lives, narrower paddle, faster ball
  fixed  - Exactly what the config file says

Examples:
  brickout
  brickout --difficulty hard
  brickout --config ./my-brickout.yaml
  brickout serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 60, "Simulation rate (ticks per second)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append structured logs to this file")

	rootCmd.AddCommand(serveCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size, with one row reserved for the help footer.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height - 1,
		TickRate: flagTickRate,
		FPS:      flagFPS,
	}

	if err := tui.Run(runtime, cfg, newLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger builds the session logger. Logging to the terminal would fight
// the alternate screen, so local play logs to a file or not at all.
func newLogger() *log.Logger {
	if flagLog == "" {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickout",
	})
}
