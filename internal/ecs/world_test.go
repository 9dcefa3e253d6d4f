package ecs

import "testing"

// stub component used only in tests
type testComp struct{ val int }

func TestCreateEntity(t *testing.T) {
	w := NewWorld(4)
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if w.Count() != 1 || w.Len() != 1 {
		t.Fatalf("Count=%d Len=%d, want 1/1", w.Count(), w.Len())
	}
}

func TestDestroyEntityInvalidatesID(t *testing.T) {
	w := NewWorld(4)
	id := w.CreateEntity()
	w.DestroyEntity(id)
	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.ID(id.Index()) != NilEntity {
		t.Fatal("freed slot should not report a live id")
	}
}

func TestFreedSlotIsReusedWithNewGeneration(t *testing.T) {
	w := NewWorld(4)
	old := w.CreateEntity()
	w.DestroyEntity(old)
	fresh := w.CreateEntity()

	if fresh.Index() != old.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", old.Index(), fresh.Index())
	}
	if fresh.Generation() == old.Generation() {
		t.Fatal("reused slot must carry a new generation")
	}
	if w.Alive(old) {
		t.Fatal("stale id must not be alive after its slot is reused")
	}
	if !w.Alive(fresh) {
		t.Fatal("fresh id should be alive")
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d, want 1", w.Len())
	}
}

func TestDestroyStaleIsNoop(t *testing.T) {
	w := NewWorld(4)
	old := w.CreateEntity()
	w.DestroyEntity(old)
	fresh := w.CreateEntity()
	// Destroying through the stale id must not free the new occupant.
	w.DestroyEntity(old)
	if !w.Alive(fresh) {
		t.Fatal("stale DestroyEntity removed the new occupant")
	}
}

func TestRegisteredStoresStayAligned(t *testing.T) {
	w := NewWorld(4)
	a := NewStore[testComp](w)
	for k := 0; k < 3; k++ {
		w.CreateEntity()
	}
	b := NewStore[*testComp](w)
	w.CreateEntity()

	if a.Len() != 4 || b.Len() != 4 {
		t.Fatalf("store lengths = %d/%d, want 4/4", a.Len(), b.Len())
	}
}

func TestDestroyEntityClearsStores(t *testing.T) {
	w := NewWorld(4)
	s := NewStore[testComp](w)
	id := w.CreateEntity()
	s.Set(id, testComp{val: 7})
	w.DestroyEntity(id)

	if _, ok := s.At(id.Index()); ok {
		t.Fatal("component should be gone after DestroyEntity")
	}
}
