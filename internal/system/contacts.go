package system

import (
	"sweepbox/internal/component"
	"sweepbox/internal/ecs"
	"sweepbox/internal/geom"
)

// Axis names the axis a contact was resolved on.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Contact is one non-empty collision report.
type Contact struct {
	Index int
	Axis  Axis
	Hit   geom.Box
}

// Contacts lists the collision reports left by the last Resolve, in index
// order with x before y.
func Contacts[PH component.Collider](phys *ecs.Store[PH]) []Contact {
	var out []Contact
	phys.Each(func(i int, ph PH) {
		if hit, ok := ph.CollisionX(); ok {
			out = append(out, Contact{Index: i, Axis: AxisX, Hit: hit})
		}
		if hit, ok := ph.CollisionY(); ok {
			out = append(out, Contact{Index: i, Axis: AxisY, Hit: hit})
		}
	})
	return out
}
