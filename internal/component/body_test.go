package component

import (
	"testing"

	"sweepbox/internal/geom"
)

func TestBodyReportsRoundTrip(t *testing.T) {
	b := NewBody(geom.NewRect(0.0, 0.0, 1.0, 1.0))
	if _, ok := b.CollisionX(); ok {
		t.Fatal("fresh body should have no x report")
	}

	hit := geom.NewRect(5.0, 0.0, 1.0, 1.0)
	b.SetCollisionX(&hit)
	hit.X = 99 // the body keeps its own copy

	got, ok := b.CollisionX()
	if !ok || got.X != 5 {
		t.Fatalf("CollisionX = %v,%v; want x=5", got, ok)
	}
	b.SetCollisionX(nil)
	if _, ok := b.CollisionX(); ok {
		t.Fatal("nil report should clear the slot")
	}
}

func TestCapabilitiesSatisfied(t *testing.T) {
	var _ Collider = NewBody(geom.Box{})
	var _ Position = NewPos(0, 0)
	var _ Velocity = NewVel(0, 0)
	var _ Physics = NewBody(geom.Box{})
}
