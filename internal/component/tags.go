package component

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}
