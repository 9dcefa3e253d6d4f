package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"sweepbox/assets"
	"sweepbox/internal/component"
	"sweepbox/internal/gamemap"
	"sweepbox/internal/geom"
	"sweepbox/internal/scene"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 5

// Renderer draws the scene onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	tiles  assets.TileSet
}

// NewRenderer creates a Renderer for the given screen. scale is the world
// size of one map cell.
func NewRenderer(screen tcell.Screen, tiles assets.TileSet, scale float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(0, h-HUDRows), scale),
		tiles:  tiles,
	}
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize re-reads the screen size after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-HUDRows))
}

// DrawFrame renders tiles and bodies. The HUD is drawn separately.
func (r *Renderer) DrawFrame(s *scene.Scene, gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawBodies(s)
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	style := tcell.StyleDefault.Background(colorBackground)
	v := r.camera.View
	for y := max(v.Y, 0); y < min(v.Bottom(), gmap.Height); y++ {
		for x := max(v.X, 0); x < min(v.Right(), gmap.Width); x++ {
			sx, sy, _ := r.camera.CellToScreen(x, y)
			var glyph string
			switch gmap.At(x, y).Kind {
			case gamemap.TileWall:
				glyph = r.tiles.Wall
			case gamemap.TileDoor:
				glyph = assets.GlyphDoor
			default:
				glyph = r.tiles.Floor
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

type drawable struct {
	order  int
	center geom.Vec
	glyph  component.Glyph
}

// drawBodies renders every entity with a glyph and a position at the cell
// holding its hitbox centre, lowest RenderOrder first.
func (r *Renderer) drawBodies(s *scene.Scene) {
	var items []drawable
	s.Glyph.Each(func(i int, g component.Glyph) {
		p, ok := s.Pos.At(i)
		if !ok {
			return
		}
		c := geom.Vec{X: p.X(), Y: p.Y()}
		if b, ok := s.Body.At(i); ok {
			c.X, c.Y = geom.At(b.Hitbox(), component.Position(p)).Center()
		}
		items = append(items, drawable{order: g.RenderOrder, center: c, glyph: g})
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].order < items[j].order
	})

	for _, it := range items {
		sx, sy, onScreen := r.camera.WorldToScreen(it.center.X, it.center.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(it.glyph.FGColor).Background(colorBackground)
		r.putGlyph(sx, sy, it.glyph.Rune, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
