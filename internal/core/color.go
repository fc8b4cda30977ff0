package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles used by the HUD.
const (
	ColorBlob     = ColorBrightGreen
	ColorNutrient = ColorYellow
	ColorTitle    = ColorBrightCyan
	ColorMuted    = ColorGray
	ColorAlert    = ColorBrightRed
)
