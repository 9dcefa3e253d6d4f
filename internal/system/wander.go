package system

import (
	"sweepbox/internal/component"
	"sweepbox/internal/ecs"
)

// Wander keeps drifting entities moving. Resolve zeroes an axis when the
// entity is stopped on it, so a zero axis with a non-zero heading means a
// contact: the heading on that axis reverses and the velocity is restored.
// It returns the number of bounces applied.
func Wander[V component.Velocity](drift *ecs.Store[*component.Drift], vel *ecs.Store[V]) int {
	bounces := 0
	drift.Each(func(i int, d *component.Drift) {
		v, ok := vel.At(i)
		if !ok {
			return
		}
		if v.X() == 0 && d.Heading.X != 0 {
			d.Heading.X = -d.Heading.X
			bounces++
		}
		if v.Y() == 0 && d.Heading.Y != 0 {
			d.Heading.Y = -d.Heading.Y
			bounces++
		}
		v.SetX(d.Heading.X)
		v.SetY(d.Heading.Y)
	})
	return bounces
}
