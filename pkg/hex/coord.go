// Package hex holds the coordinate arithmetic of a flat-row hexagonal lattice.
//
// Cells are addressed by axial coordinates (r, g). The r axis runs east, the
// g axis runs north-east; the third cube coordinate b = -r - g is derived.
// Rows of constant g are horizontal and each row is shifted half a cell east
// of the row below it.
package hex

import "math"

// Axial represents axial coordinates (r, g).
type Axial struct {
	R int
	G int
}

// Cube represents cube coordinates (r, g, b) with r+g+b=0.
type Cube struct {
	R int
	G int
	B int
}

// Direction names one of the six neighbor directions of a cell.
type Direction int

const (
	E Direction = iota
	NE
	NW
	W
	SW
	SE
)

// NumDirections is the number of neighbors of an interior cell.
const NumDirections = 6

// Directions lists the axial offsets indexed by Direction.
var Directions = [NumDirections]Axial{
	E:  {+1, 0},
	NE: {0, +1},
	NW: {-1, +1},
	W:  {-1, 0},
	SW: {0, -1},
	SE: {+1, -1},
}

var directionNames = [NumDirections]string{"E", "NE", "NW", "W", "SW", "SE"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "Direction(?)"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction { return (d + 3) % NumDirections }

// Offset returns the axial step for d.
func (d Direction) Offset() Axial { return Directions[d] }

// DirectionOf returns the direction whose offset equals delta. ok is false
// when delta is not a unit step.
func DirectionOf(delta Axial) (d Direction, ok bool) {
	for i, o := range Directions {
		if o == delta {
			return Direction(i), true
		}
	}
	return 0, false
}

// B returns the derived third coordinate.
func (a Axial) B() int { return -a.R - a.G }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.R + b.R, a.G + b.G} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{a.R - b.R, a.G - b.G} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.R * k, a.G * k} }

// Neighbor returns the coordinate one step from a in direction d.
func (a Axial) Neighbor(d Direction) Axial { return a.Add(Directions[d]) }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube { return Cube{R: a.R, G: a.G, B: a.B()} }

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{R: c.R, G: c.G} }

// Distance returns the hex step distance between two axial coords.
func Distance(a, b Axial) int {
	d := a.Sub(b)
	return (abs(d.R) + abs(d.G) + abs(d.B())) / 2
}

// RowSpacing returns the vertical distance between rows for cell spacing d.
func RowSpacing(d float64) float64 { return d * math.Sqrt(3) / 2 }

// ToPixel converts axial coordinates to the Cartesian centre of the cell for
// centre-to-centre spacing d.
func ToPixel(a Axial, d float64) (x, y float64) {
	x = d*float64(a.R) + d/2*float64(a.G)
	y = float64(a.G) * RowSpacing(d)
	return
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
