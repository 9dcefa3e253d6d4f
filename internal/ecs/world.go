package ecs

// store is implemented by every Store so the World can grow and clear all of
// them together.
type store interface {
	grow(n int)
	clear(index int)
}

// World issues entity ids and keeps its registered stores aligned: every
// store has one slot per index the world has ever issued.
type World struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	stores      []store
}

// NewWorld creates an empty World with room for capacity entities before
// any reallocation.
func NewWorld(capacity int) *World {
	return &World{
		generations: make([]uint32, 0, capacity),
		alive:       make([]bool, 0, capacity),
		freeList:    make([]uint32, 0, capacity/4),
	}
}

// Len returns the number of slots issued so far, live or free.
func (w *World) Len() int { return len(w.generations) }

// CreateEntity returns a fresh id, reusing a freed slot when one exists.
func (w *World) CreateEntity() EntityID {
	if n := len(w.freeList); n > 0 {
		idx := w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		w.alive[idx] = true
		return NewEntityID(idx, w.generations[idx])
	}
	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	w.alive = append(w.alive, true)
	for _, s := range w.stores {
		s.grow(len(w.generations))
	}
	return NewEntityID(idx, 1)
}

// DestroyEntity frees the entity's slot and removes it from every store.
// Stale or unknown ids are ignored.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	idx := id.Index()
	for _, s := range w.stores {
		s.clear(idx)
	}
	w.alive[idx] = false
	w.generations[idx]++
	if w.generations[idx] == 0 {
		w.generations[idx] = 1
	}
	w.freeList = append(w.freeList, uint32(idx))
}

// Alive reports whether id refers to a live entity.
func (w *World) Alive(id EntityID) bool {
	idx := id.Index()
	if id == NilEntity || idx >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == id.Generation()
}

// ID returns the live id occupying index i, or NilEntity.
func (w *World) ID(i int) EntityID {
	if i < 0 || i >= len(w.generations) || !w.alive[i] {
		return NilEntity
	}
	return NewEntityID(uint32(i), w.generations[i])
}

// Count returns the number of live entities.
func (w *World) Count() int { return len(w.generations) - len(w.freeList) }

func (w *World) register(s store) {
	s.grow(len(w.generations))
	w.stores = append(w.stores, s)
}
