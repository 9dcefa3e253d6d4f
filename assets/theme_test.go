package assets

import "testing"

func TestArenaByID(t *testing.T) {
	for _, want := range Arenas {
		got, ok := ArenaByID(want.ID)
		if !ok || got.Name != want.Name {
			t.Errorf("ArenaByID(%q) = %v,%v", want.ID, got.Name, ok)
		}
	}
	if _, ok := ArenaByID("nowhere"); ok {
		t.Error("unknown arena should not be found")
	}
}

func TestArenasAreGeneratable(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Arenas {
		if seen[a.ID] {
			t.Errorf("duplicate arena id %q", a.ID)
		}
		seen[a.ID] = true
		if a.MinRoomSize+2 > a.MinLeafSize {
			t.Errorf("%s: min room %d does not fit in min leaf %d", a.ID, a.MinRoomSize, a.MinLeafSize)
		}
		if a.Width <= a.MinLeafSize*2 && a.Height <= a.MinLeafSize*2 {
			t.Errorf("%s: %dx%d too small to split", a.ID, a.Width, a.Height)
		}
	}
}
