package generate

import (
	"math/rand"
	"testing"

	"sweepbox/internal/gamemap"
	"sweepbox/internal/geom"
)

// makeRoomedMap builds a GameMap pre-populated with the given number of rooms.
func makeRoomedMap(rooms int) *gamemap.GameMap {
	gmap := gamemap.New(80, 40, 1)
	for i := 0; i < rooms; i++ {
		r := geom.NewRect(2+i*10, 2, 7, 7)
		gmap.Rooms = append(gmap.Rooms, r)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				gmap.Set(x, y, gamemap.MakeFloor())
			}
		}
	}
	return gmap
}

func scatterConfig(crates, drifters int, seed int64) *Config {
	return &Config{Crates: crates, Drifters: drifters, Rand: rand.New(rand.NewSource(seed))}
}

func TestScatterNoopWithSingleRoom(t *testing.T) {
	for rooms := 0; rooms < 2; rooms++ {
		if got := Scatter(makeRoomedMap(rooms), scatterConfig(5, 5, 1)); len(got) != 0 {
			t.Errorf("rooms=%d: expected no spawns, got %d", rooms, len(got))
		}
	}
}

func TestScatterCounts(t *testing.T) {
	spawns := Scatter(makeRoomedMap(4), scatterConfig(6, 3, 7))
	var crates, drifters int
	for _, s := range spawns {
		switch s.Kind {
		case SpawnCrate:
			crates++
		case SpawnDrifter:
			drifters++
		}
	}
	if crates != 6 || drifters != 3 {
		t.Fatalf("got %d crates and %d drifters, want 6 and 3", crates, drifters)
	}
}

func TestScatterAvoidsPlayerRoomAndWalls(t *testing.T) {
	gmap := makeRoomedMap(3)
	first := gmap.Rooms[0]
	for seed := int64(0); seed < 20; seed++ {
		for _, s := range Scatter(gmap, scatterConfig(8, 8, seed)) {
			if !gmap.IsWalkable(s.X, s.Y) {
				t.Fatalf("seed=%d: spawn on wall at (%d,%d)", seed, s.X, s.Y)
			}
			if s.X >= first.X && s.X < first.Right() && s.Y >= first.Y && s.Y < first.Bottom() {
				t.Fatalf("seed=%d: spawn in the player's room at (%d,%d)", seed, s.X, s.Y)
			}
		}
	}
}

func TestScatterNoSharedTiles(t *testing.T) {
	spawns := Scatter(makeRoomedMap(3), scatterConfig(20, 20, 3))
	seen := make(map[[2]int]bool)
	for _, s := range spawns {
		k := [2]int{s.X, s.Y}
		if seen[k] {
			t.Fatalf("two spawns share tile %v", k)
		}
		seen[k] = true
	}
}
