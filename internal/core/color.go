package core

// Color is a foreground color for a frame buffer cell. Values map to ANSI
// 256-color codes at the platform layer; the core never interprets them.
type Color uint8

// Colors used by the game renderer. Red/yellow/green mirror the classic
// brick row palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
)
