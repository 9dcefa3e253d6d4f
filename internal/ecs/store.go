package ecs

type slot[T any] struct {
	value      T
	generation uint32
	present    bool
}

// Store is dense-with-holes component storage: slot i holds the component of
// the entity whose id has index i, if it has one. Stores created against the
// same World always have the same Len.
type Store[T any] struct {
	slots []slot[T]
}

// NewStore creates a store and registers it with w so it tracks every index
// w issues. A nil world yields a standalone store that grows only on Set.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{}
	if w != nil {
		w.register(s)
	}
	return s
}

// Len returns the number of slots, present or not.
func (s *Store[T]) Len() int { return len(s.slots) }

// Set attaches c to the entity. The store grows if id's index is beyond Len.
func (s *Store[T]) Set(id EntityID, c T) {
	idx := id.Index()
	if idx >= len(s.slots) {
		s.grow(idx + 1)
	}
	s.slots[idx] = slot[T]{value: c, generation: id.Generation(), present: true}
}

// Get returns the entity's component. The second result is false when the
// entity has none or id is stale.
func (s *Store[T]) Get(id EntityID) (T, bool) {
	idx := id.Index()
	if idx >= len(s.slots) {
		var zero T
		return zero, false
	}
	sl := s.slots[idx]
	if !sl.present || sl.generation != id.Generation() {
		var zero T
		return zero, false
	}
	return sl.value, true
}

// Has reports whether the entity has a component in this store.
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

// Remove detaches the entity's component. Stale ids are ignored.
func (s *Store[T]) Remove(id EntityID) {
	if s.Has(id) {
		s.clear(id.Index())
	}
}

// At returns the component in slot i regardless of generation.
func (s *Store[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.slots) || !s.slots[i].present {
		var zero T
		return zero, false
	}
	return s.slots[i].value, true
}

// Each calls fn for every present slot in index order.
func (s *Store[T]) Each(fn func(i int, c T)) {
	for i := range s.slots {
		if s.slots[i].present {
			fn(i, s.slots[i].value)
		}
	}
}

func (s *Store[T]) grow(n int) {
	for len(s.slots) < n {
		s.slots = append(s.slots, slot[T]{})
	}
}

func (s *Store[T]) clear(index int) {
	if index < len(s.slots) {
		s.slots[index] = slot[T]{}
	}
}
