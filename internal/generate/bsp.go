package generate

import (
	"math"
	"math/rand"

	"sweepbox/internal/gamemap"
	"sweepbox/internal/geom"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation for one arena.
type Config struct {
	MapWidth, MapHeight int
	TileSize            float64
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	// BodyScale is the side of the widest hitbox placed in the arena, in
	// tiles. Rooms are never narrower than three such bodies abreast.
	BodyScale     float64
	CorridorStyle CorridorStyle
	CorridorWidth int
	Crates        int // static obstacles to scatter
	Drifters      int // bouncing bodies to scatter
	Rand          *rand.Rand
}

// builder carries the state of one Generate run.
type builder struct {
	cfg  *Config
	gmap *gamemap.GameMap
}

// Generate partitions the map, carves one room per partition and links
// sibling partitions with corridors. It returns the map plus the player's
// start tile, the middle of the first room.
func Generate(cfg *Config) (*gamemap.GameMap, int, int) {
	b := &builder{cfg: cfg, gmap: gamemap.New(cfg.MapWidth, cfg.MapHeight, cfg.TileSize)}
	b.divide(geom.NewRect(0, 0, cfg.MapWidth, cfg.MapHeight))

	px, py := 1, 1
	if len(b.gmap.Rooms) > 0 {
		px, py = roomCenter(b.gmap.Rooms[0])
	}
	return b.gmap, px, py
}

// divide fills area with rooms and returns the one its parent should link
// to, or false when area ended up empty.
func (b *builder) divide(area geom.Rect[int]) (geom.Rect[int], bool) {
	first, second, ok := b.cut(area)
	if !ok {
		return b.carveRoom(area)
	}
	r1, ok1 := b.divide(first)
	r2, ok2 := b.divide(second)
	switch {
	case ok1 && ok2:
		x1, y1 := roomCenter(r1)
		x2, y2 := roomCenter(r2)
		carveCorridor(b.gmap, x1, y1, x2, y2, b.cfg)
		return r1, true
	case ok1:
		return r1, true
	default:
		return r2, ok2
	}
}

// cut splits area in two, across its long side when it is clearly
// elongated. Areas within MaxLeafSize stay whole one time in four, and no
// half is ever thinner than MinLeafSize.
func (b *builder) cut(area geom.Rect[int]) (geom.Rect[int], geom.Rect[int], bool) {
	cfg := b.cfg
	oversized := area.W > cfg.MaxLeafSize || area.H > cfg.MaxLeafSize
	if !oversized && cfg.Rand.Float64() < 0.25 {
		return area, area, false
	}

	horizontal := cfg.Rand.Intn(2) == 0
	switch {
	case area.W*4 >= area.H*5:
		horizontal = false
	case area.H*4 >= area.W*5:
		horizontal = true
	}
	span := func() int {
		if horizontal {
			return area.H
		}
		return area.W
	}
	if span() <= 2*cfg.MinLeafSize {
		horizontal = !horizontal
		if span() <= 2*cfg.MinLeafSize {
			return area, area, false
		}
	}

	at := cfg.MinLeafSize + cfg.Rand.Intn(span()-2*cfg.MinLeafSize+1)
	if horizontal {
		return geom.NewRect(area.X, area.Y, area.W, at),
			geom.NewRect(area.X, area.Y+at, area.W, area.H-at), true
	}
	return geom.NewRect(area.X, area.Y, at, area.H),
		geom.NewRect(area.X+at, area.Y, area.W-at, area.H), true
}

// carveRoom digs a randomly sized room inside area. RoomPadding tiles of
// wall surround it and the outermost ring of the map stays solid.
func (b *builder) carveRoom(area geom.Rect[int]) (geom.Rect[int], bool) {
	cfg := b.cfg
	pad := cfg.RoomPadding
	x0 := max(area.X+pad, 1)
	y0 := max(area.Y+pad, 1)
	availW := min(area.Right()-pad, b.gmap.Width-1) - x0
	availH := min(area.Bottom()-pad, b.gmap.Height-1) - y0
	if availW < 3 || availH < 3 {
		return geom.Rect[int]{}, false
	}

	side := b.minSide()
	w := between(cfg.Rand, min(side, availW), availW)
	h := between(cfg.Rand, min(side, availH), availH)
	room := geom.NewRect(x0+cfg.Rand.Intn(availW-w+1), y0+cfg.Rand.Intn(availH-h+1), w, h)

	for y := room.Y; y < room.Bottom(); y++ {
		for x := room.X; x < room.Right(); x++ {
			b.gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	b.gmap.Rooms = append(b.gmap.Rooms, room)
	return room, true
}

// minSide is the smallest room side worth carving.
func (b *builder) minSide() int {
	return max(3, b.cfg.MinRoomSize, int(math.Ceil(3*b.cfg.BodyScale)))
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// roomCenter returns the tile at the middle of room.
func roomCenter(room geom.Rect[int]) (int, int) {
	return room.X + (room.W-1)/2, room.Y + (room.H-1)/2
}
