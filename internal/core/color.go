package core

// Color represents a foreground color for a screen cell.
// Adapters map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
)
