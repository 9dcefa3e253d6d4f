package system

import (
	"math"

	"sweepbox/internal/component"
)

// Steer sets v to move in direction (dx, dy) at speed units per second.
// Diagonals are normalized so they are no faster than straight moves.
// A zero direction stops the entity.
func Steer(v component.Velocity, dx, dy int, speed float64) {
	if dx == 0 && dy == 0 {
		v.SetX(0)
		v.SetY(0)
		return
	}
	l := math.Hypot(float64(dx), float64(dy))
	v.SetX(float64(dx) / l * speed)
	v.SetY(float64(dy) / l * speed)
}
