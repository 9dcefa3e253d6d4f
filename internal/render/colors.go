package render

import "github.com/gdamore/tcell/v2"

// HUD and frame colours. Emoji are drawn by the terminal in their own
// colours, so these only tint text and separators.
var (
	colorBackground = tcell.ColorBlack
	colorSeparator  = tcell.ColorGray
	colorStatus     = tcell.ColorWhite
	colorContact    = tcell.ColorOrangeRed
	colorIdle       = tcell.ColorDarkGray
	colorMessage    = tcell.ColorLightYellow
)
