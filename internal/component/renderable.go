package component

import "github.com/gdamore/tcell/v2"

// Glyph is how the sandbox draws an entity.
type Glyph struct {
	Rune        string
	FGColor     tcell.Color
	RenderOrder int
}
