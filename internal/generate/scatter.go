package generate

import (
	"sweepbox/internal/gamemap"
	"sweepbox/internal/geom"
)

// SpawnKind says what to create at a spawn point.
type SpawnKind uint8

const (
	SpawnCrate SpawnKind = iota
	SpawnDrifter
)

// Spawn is one tile where a body should appear.
type Spawn struct {
	Kind SpawnKind
	X, Y int
}

// Scatter places cfg.Crates crates and cfg.Drifters drifters on free tiles
// of every room except the first, which belongs to the player. No two
// spawns share a tile.
func Scatter(gmap *gamemap.GameMap, cfg *Config) []Spawn {
	if len(gmap.Rooms) < 2 {
		return nil
	}
	rooms := gmap.Rooms[1:]

	occupied := make(map[[2]int]bool)
	var spawns []Spawn
	place := func(kind SpawnKind, n int) {
		for k := 0; k < n; k++ {
			room := rooms[cfg.Rand.Intn(len(rooms))]
			x, y, ok := pickFreeInRoom(room, cfg, occupied)
			if !ok {
				continue
			}
			occupied[[2]int{x, y}] = true
			spawns = append(spawns, Spawn{Kind: kind, X: x, Y: y})
		}
	}
	place(SpawnCrate, cfg.Crates)
	place(SpawnDrifter, cfg.Drifters)
	return spawns
}

// pickFreeInRoom tries up to 20 times to find an unoccupied tile inside
// room and gives up after that, so a crowded room gets fewer spawns rather
// than two bodies overlapping.
func pickFreeInRoom(room geom.Rect[int], cfg *Config, occupied map[[2]int]bool) (int, int, bool) {
	const maxAttempts = 20
	for a := 0; a < maxAttempts; a++ {
		x, y := randomInRoom(room, cfg)
		if !occupied[[2]int{x, y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}

func randomInRoom(room geom.Rect[int], cfg *Config) (int, int) {
	// Keep off the outermost ring so corridor mouths stay clear.
	x1, y1 := room.X+1, room.Y+1
	x2, y2 := room.Right()-2, room.Bottom()-2
	// Fall back to full room bounds for very small rooms.
	if x1 > x2 || y1 > y2 {
		x1, y1 = room.X, room.Y
		x2, y2 = room.Right()-1, room.Bottom()-1
	}
	x := x1 + cfg.Rand.Intn(max(1, x2-x1+1))
	y := y1 + cfg.Rand.Intn(max(1, y2-y1+1))
	return x, y
}
