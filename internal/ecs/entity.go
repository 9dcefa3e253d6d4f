package ecs

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation changes when the slot is
// freed, so ids held past DestroyEntity no longer resolve.
type EntityID uint64

// NilEntity is the zero value. Generations start at 1, so no live entity has this ID.
const NilEntity EntityID = 0

// NewEntityID packs an index and a generation into an EntityID.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index shared by every store of the entity's world.
func (id EntityID) Index() int { return int(uint32(id)) }

// Generation returns the slot generation the id was issued for.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
