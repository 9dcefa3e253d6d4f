// Package gamemap is the tile grid the physics engine queries as its static map.
package gamemap

import (
	"math"

	"sweepbox/internal/geom"
)

// GameMap holds the tile grid and room list for one arena. Tile (x, y)
// covers the world box (x*TileSize, y*TileSize, TileSize, TileSize).
type GameMap struct {
	Width, Height int
	TileSize      float64
	Tiles         [][]Tile
	Rooms         []geom.Rect[int]
}

// New creates a GameMap filled with walls.
func New(width, height int, tileSize float64) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, TileSize: tileSize, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// TileBox returns the world box covered by tile (x, y).
func (m *GameMap) TileBox(x, y int) geom.Box {
	s := m.TileSize
	return geom.NewRect(float64(x)*s, float64(y)*s, s, s)
}

// TileCenter returns the world coordinates of the center of tile (x, y).
func (m *GameMap) TileCenter(x, y int) (float64, float64) {
	return m.TileBox(x, y).Center()
}

// Blocked reports whether the interior of box overlaps a wall or leaves the
// map. Tiles the box only touches along an edge are not tested. A nil map
// blocks nothing.
func (m *GameMap) Blocked(box geom.Box) bool {
	if m == nil {
		return false
	}
	x0 := int(math.Floor(box.X / m.TileSize))
	y0 := int(math.Floor(box.Y / m.TileSize))
	x1 := int(math.Ceil(box.Right()/m.TileSize)) - 1
	y1 := int(math.Ceil(box.Bottom()/m.TileSize)) - 1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !m.IsWalkable(x, y) {
				return true
			}
		}
	}
	return false
}
