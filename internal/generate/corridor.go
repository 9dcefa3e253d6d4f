package generate

import (
	"sweepbox/internal/gamemap"
	"sweepbox/internal/geom"
)

// carveCorridor digs a tunnel between tiles (x1,y1) and (x2,y2) in the
// configured style. Tunnels are cfg.CorridorWidth tiles thick (at least 1)
// so bodies narrower than that can pass.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	w := max(1, cfg.CorridorWidth)
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		midY := (y1 + y2) / 2
		carveSpan(gmap, segment(x1, y1, x1, midY, w))
		carveSpan(gmap, segment(x1, midY, x2, midY, w))
		carveSpan(gmap, segment(x2, midY, x2, y2, w))
	case CorridorStraight:
		carveSpan(gmap, segment(x1, y1, x2, y1, w))
		carveSpan(gmap, segment(x2, y1, x2, y2, w))
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveSpan(gmap, segment(x1, y1, x2, y1, w))
			carveSpan(gmap, segment(x2, y1, x2, y2, w))
		} else {
			carveSpan(gmap, segment(x1, y1, x1, y2, w))
			carveSpan(gmap, segment(x1, y2, x2, y2, w))
		}
	}
}

// segment returns the tile rectangle of a straight run from (x1,y1) to
// (x2,y2), w tiles thick, starting at the run's own row or column.
func segment(x1, y1, x2, y2, w int) geom.Rect[int] {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	r := geom.NewRect(x1, y1, x2-x1+1, y2-y1+1)
	if r.H == 1 {
		r.H = w
	}
	if r.W == 1 {
		r.W = w
	}
	return r
}

// carveSpan turns the tiles of r into floor, leaving the map's outer ring solid.
func carveSpan(gmap *gamemap.GameMap, r geom.Rect[int]) {
	for y := max(r.Y, 1); y < min(r.Bottom(), gmap.Height-1); y++ {
		for x := max(r.X, 1); x < min(r.Right(), gmap.Width-1); x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}
