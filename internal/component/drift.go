package component

import "sweepbox/internal/geom"

// Drift marks an entity that keeps moving at a fixed speed and bounces off
// whatever stops it.
type Drift struct {
	Heading geom.Vec // units per second; the sign on each axis flips on contact
}
