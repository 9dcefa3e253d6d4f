package factory

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"sweepbox/assets"
	"sweepbox/internal/component"
	"sweepbox/internal/ecs"
	"sweepbox/internal/generate"
	"sweepbox/internal/geom"
	"sweepbox/internal/scene"
)

// Hitbox sizes as a fraction of one tile. Bodies smaller than a tile keep
// one-tile corridors passable.
const (
	playerScale  = 0.8
	crateScale   = 1.0
	drifterScale = 0.6

	// LargestScale is the widest hitbox created here.
	LargestScale = crateScale
)

// insetBox is a square hitbox of scale*tile centred in a tile-sized cell.
func insetBox(tile, scale float64) geom.Box {
	side := tile * scale
	off := (tile - side) / 2
	return geom.NewRect(off, off, side, side)
}

// NewPlayer creates the player entity with its cell's top-left at (x, y).
func NewPlayer(s *scene.Scene, x, y, tile float64) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Pos.Set(id, component.NewPos(x, y))
	s.Vel.Set(id, component.NewVel(0, 0))
	s.Body.Set(id, component.NewBody(insetBox(tile, playerScale)))
	s.Glyph.Set(id, component.Glyph{Rune: assets.GlyphPlayer, FGColor: tcell.ColorYellow, RenderOrder: 10})
	s.Player.Set(id, component.TagPlayer{})
	return id
}

// NewCrate creates a static obstacle. It has no velocity, so it never
// moves but still blocks everything that does.
func NewCrate(s *scene.Scene, x, y, tile float64) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Pos.Set(id, component.NewPos(x, y))
	s.Body.Set(id, component.NewBody(insetBox(tile, crateScale)))
	s.Glyph.Set(id, component.Glyph{Rune: assets.GlyphCrate, FGColor: tcell.ColorOlive, RenderOrder: 2})
	return id
}

// NewDrifter creates a body that moves along heading and bounces off
// whatever stops it.
func NewDrifter(s *scene.Scene, x, y, tile float64, heading geom.Vec) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Pos.Set(id, component.NewPos(x, y))
	s.Vel.Set(id, component.NewVel(heading.X, heading.Y))
	s.Body.Set(id, component.NewBody(insetBox(tile, drifterScale)))
	s.Drift.Set(id, &component.Drift{Heading: heading})
	s.Glyph.Set(id, component.Glyph{Rune: assets.GlyphDrifter, FGColor: tcell.ColorAqua, RenderOrder: 5})
	return id
}

// RandomHeading returns a diagonal heading of the given speed with random
// signs. Both axes are non-zero so a drifter always bounces on both.
func RandomHeading(rng *rand.Rand, speed float64) geom.Vec {
	axis := speed / math.Sqrt2
	h := geom.Vec{X: axis, Y: axis}
	if rng.Intn(2) == 0 {
		h.X = -h.X
	}
	if rng.Intn(2) == 0 {
		h.Y = -h.Y
	}
	return h
}

// Populate creates the bodies listed in spawns. Tile coordinates are
// scaled by tile; drifters move at driftSpeed tiles per second.
func Populate(s *scene.Scene, spawns []generate.Spawn, tile, driftSpeed float64, rng *rand.Rand) {
	for _, sp := range spawns {
		x, y := float64(sp.X)*tile, float64(sp.Y)*tile
		switch sp.Kind {
		case generate.SpawnCrate:
			NewCrate(s, x, y, tile)
		case generate.SpawnDrifter:
			NewDrifter(s, x, y, tile, RandomHeading(rng, driftSpeed*tile))
		}
	}
}
