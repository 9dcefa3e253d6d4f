package assets

import "sweepbox/internal/generate"

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer  = "🧙"
	GlyphCrate   = "📦"
	GlyphDrifter = "🪩"
	GlyphDoor    = "🚪"
)

// TileSet holds the glyphs used to draw one arena's terrain.
// Each tile is two terminal columns wide.
type TileSet struct {
	Wall  string
	Floor string
}

// ArenaDef is a named generator preset.
type ArenaDef struct {
	ID            string
	Name          string
	Width, Height int // in tiles
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	CorridorStyle generate.CorridorStyle
	CorridorWidth int
	Tiles         TileSet
}

// Arenas is the ordered list of selectable arenas. The first is the default.
var Arenas = []ArenaDef{
	{
		ID:            "warehouse",
		Name:          "Warehouse",
		Width:         60,
		Height:        30,
		MinLeafSize:   10,
		MaxLeafSize:   20,
		MinRoomSize:   6,
		CorridorStyle: generate.CorridorLShaped,
		CorridorWidth: 3,
		Tiles:         TileSet{Wall: "🧱", Floor: "·"},
	},
	{
		ID:            "maze",
		Name:          "Maze",
		Width:         50,
		Height:        30,
		MinLeafSize:   7,
		MaxLeafSize:   10,
		MinRoomSize:   4,
		CorridorStyle: generate.CorridorZShaped,
		CorridorWidth: 2,
		Tiles:         TileSet{Wall: "🌲", Floor: "."},
	},
	{
		ID:            "hall",
		Name:          "Great Hall",
		Width:         70,
		Height:        24,
		MinLeafSize:   14,
		MaxLeafSize:   36,
		MinRoomSize:   10,
		CorridorStyle: generate.CorridorStraight,
		CorridorWidth: 4,
		Tiles:         TileSet{Wall: "🪨", Floor: "░"},
	},
}

// ArenaByID returns the arena with the given id.
func ArenaByID(id string) (ArenaDef, bool) {
	for _, a := range Arenas {
		if a.ID == id {
			return a, true
		}
	}
	return ArenaDef{}, false
}
