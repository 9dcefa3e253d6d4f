package component

import "sweepbox/internal/geom"

// Body is the stock Physics implementation: a fixed local hitbox plus the
// collision reports written by the last resolution.
type Body struct {
	hitbox     geom.Box
	collisionX *geom.Box
	collisionY *geom.Box
}

// NewBody returns a Body with the given local-space hitbox.
func NewBody(hitbox geom.Box) *Body { return &Body{hitbox: hitbox} }

// Hitbox returns the local-space hitbox.
func (b *Body) Hitbox() geom.Box { return b.hitbox }

// SetCollisionX stores a copy of the box struck on x, or clears it when hit is nil.
func (b *Body) SetCollisionX(hit *geom.Box) { b.collisionX = copyBox(hit) }

// SetCollisionY is SetCollisionX for the y axis.
func (b *Body) SetCollisionY(hit *geom.Box) { b.collisionY = copyBox(hit) }

// CollisionX returns the box struck on the x axis during the last resolution.
func (b *Body) CollisionX() (geom.Box, bool) { return deref(b.collisionX) }

// CollisionY returns the box struck on the y axis during the last resolution.
func (b *Body) CollisionY() (geom.Box, bool) { return deref(b.collisionY) }

func copyBox(b *geom.Box) *geom.Box {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func deref(b *geom.Box) (geom.Box, bool) {
	if b == nil {
		return geom.Box{}, false
	}
	return *b, true
}
