package component

// Vel is the stock Velocity implementation.
type Vel struct {
	x, y float64
}

// NewVel returns a Vel of (x, y) units per second.
func NewVel(x, y float64) *Vel { return &Vel{x: x, y: y} }

func (v *Vel) X() float64     { return v.x }
func (v *Vel) Y() float64     { return v.y }
func (v *Vel) SetX(x float64) { v.x = x }
func (v *Vel) SetY(y float64) { v.y = y }

// Stopped reports whether both axes are zero.
func (v *Vel) Stopped() bool { return v.x == 0 && v.y == 0 }
