package game

import (
	"math/rand"

	"sweepbox/assets"
	"sweepbox/internal/config"
	"sweepbox/internal/factory"
	"sweepbox/internal/generate"
)

// TileSize is the world size of one map tile. Speeds in the config are in
// tiles per second.
const TileSize = 1.0

// arenaConfig builds a generate.Config for arena a.
func arenaConfig(a assets.ArenaDef, sb config.SandboxConfig, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		MapWidth:      a.Width,
		MapHeight:     a.Height,
		TileSize:      TileSize,
		MinLeafSize:   a.MinLeafSize,
		MaxLeafSize:   a.MaxLeafSize,
		MinRoomSize:   a.MinRoomSize,
		RoomPadding:   1,
		BodyScale:     factory.LargestScale,
		CorridorStyle: a.CorridorStyle,
		CorridorWidth: a.CorridorWidth,
		Crates:        sb.Crates,
		Drifters:      sb.Drifters,
		Rand:          rng,
	}
}

// arenaIndex returns the position of id in assets.Arenas, or 0 when the id
// is unknown.
func arenaIndex(id string) int {
	for i, a := range assets.Arenas {
		if a.ID == id {
			return i
		}
	}
	return 0
}

// cycleArena returns the arena step places after id, wrapping around.
func cycleArena(id string, step int) assets.ArenaDef {
	n := len(assets.Arenas)
	i := ((arenaIndex(id)+step)%n + n) % n
	return assets.Arenas[i]
}
