package component

// Pos is the stock Position implementation.
type Pos struct {
	x, y float64
}

// NewPos returns a Pos at (x, y).
func NewPos(x, y float64) *Pos { return &Pos{x: x, y: y} }

func (p *Pos) X() float64     { return p.x }
func (p *Pos) Y() float64     { return p.y }
func (p *Pos) SetX(x float64) { p.x = x }
func (p *Pos) SetY(y float64) { p.y = y }
