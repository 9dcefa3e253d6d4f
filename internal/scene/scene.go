// Package scene holds the concrete entity set the sandbox simulates: one
// ecs.World and the component stores registered with it.
package scene

import (
	"fmt"

	"sweepbox/internal/component"
	"sweepbox/internal/ecs"
	"sweepbox/internal/system"
)

// Scene is the sandbox's entity set. All stores are registered with World,
// so Resolve always sees them aligned.
type Scene struct {
	World  *ecs.World
	Pos    *ecs.Store[*component.Pos]
	Vel    *ecs.Store[*component.Vel]
	Body   *ecs.Store[*component.Body]
	Glyph  *ecs.Store[component.Glyph]
	Drift  *ecs.Store[*component.Drift]
	Player *ecs.Store[component.TagPlayer]
}

// New returns an empty scene with room for capacity entities.
func New(capacity int) *Scene {
	w := ecs.NewWorld(capacity)
	return &Scene{
		World:  w,
		Pos:    ecs.NewStore[*component.Pos](w),
		Vel:    ecs.NewStore[*component.Vel](w),
		Body:   ecs.NewStore[*component.Body](w),
		Glyph:  ecs.NewStore[component.Glyph](w),
		Drift:  ecs.NewStore[*component.Drift](w),
		Player: ecs.NewStore[component.TagPlayer](w),
	}
}

// Tick is what one Step produced.
type Tick struct {
	Contacts []system.Contact
	Bounces  int
}

// Step resolves one tick against m, then lets drifters react to the
// contacts it left behind.
func (s *Scene) Step(e *system.Engine, m component.StaticMap) (Tick, error) {
	if err := system.Resolve(e, s.Pos, s.Vel, s.Body, m); err != nil {
		return Tick{}, fmt.Errorf("scene step: %w", err)
	}
	t := Tick{Contacts: system.Contacts(s.Body)}
	t.Bounces = system.Wander(s.Drift, s.Vel)
	return t, nil
}

// PlayerID returns the first live entity tagged as the player.
func (s *Scene) PlayerID() (ecs.EntityID, bool) {
	found := ecs.NilEntity
	s.Player.Each(func(i int, _ component.TagPlayer) {
		if found == ecs.NilEntity {
			found = s.World.ID(i)
		}
	})
	return found, found != ecs.NilEntity
}

// Remove destroys id and frees its slot.
func (s *Scene) Remove(id ecs.EntityID) { s.World.DestroyEntity(id) }
