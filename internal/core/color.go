package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette used by the lander frame.
const (
	ColorDefault     Color = iota
	ColorWhite             // Message boxes
	ColorBrightWhite       // Hull and the explosion core
	ColorBrightCyan        // Nose
	ColorBrightGreen       // Landing pad
	ColorRed               // Flame, explosion
	ColorDarkRed           // Explosion fringe
	ColorOrange            // Explosion
	ColorYellow            // Flame tail, explosion
)
