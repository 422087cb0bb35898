package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for arena elements.
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

// Semantic colors used by the arena.
const (
	ColorRobot = ColorBrightWhite
	ColorBlast = ColorRed
	ColorHit   = ColorBrightRed
	ColorWall  = ColorGray
)

// robotPalette holds the colors used to tell robots apart in the HUD.
var robotPalette = []Color{
	ColorBrightCyan,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorBrightBlue,
	ColorOrange,
}

// PaletteColor returns the HUD color for the i-th robot, cycling the palette.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return robotPalette[i%len(robotPalette)]
}
