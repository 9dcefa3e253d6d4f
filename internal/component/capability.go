// Package component defines the per-aspect data an entity can carry and the
// capability contracts the physics engine is written against.
package component

import "sweepbox/internal/geom"

// Position is an entity's world-space location.
type Position interface {
	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)
}

// Velocity is an entity's motion in world units per second.
type Velocity interface {
	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)
}

// Physics is an entity's collision shape and the sink for what it struck.
// A nil report means nothing was struck on that axis.
type Physics interface {
	Hitbox() geom.Box
	SetCollisionX(hit *geom.Box)
	SetCollisionY(hit *geom.Box)
}

// StaticMap reports whether a world-space box overlaps blocking geometry.
type StaticMap interface {
	Blocked(box geom.Box) bool
}

// Collider is a Physics that can also read back its collision reports.
type Collider interface {
	Physics
	CollisionX() (geom.Box, bool)
	CollisionY() (geom.Box, bool)
}
