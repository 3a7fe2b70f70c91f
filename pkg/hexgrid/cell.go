package hexgrid

import (
	"fmt"

	"github.com/gravitas-games/hexmesh/pkg/hex"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// NoNeighbor marks an empty neighbor slot, in the arena and in dense
	// neighbor tables.
	NoNeighbor = -1
	// NoDistance marks a distance to boundary that is not computed or
	// belongs to a cell outside the boundary.
	NoDistance = -1.0
	// NoPartition marks a cell that belongs to no sub-parallelogram.
	NoPartition = -1
)

// Flags is the per-cell bitfield copied into dense arrays.
type Flags uint8

const (
	FlagBoundary       Flags = 1 << iota // Cell lies on the boundary
	FlagInsideBoundary                   // Cell is enclosed by (or on) the boundary
	FlagInsideDomain                     // Cell is inside the retained domain
)

// Cell is one hexagon of the lattice. Neighbor relations are indices into
// the owning Grid's arena; Cell.ID always equals the cell's arena index.
type Cell struct {
	ID      int
	R, G, B int
	X, Y    float64

	nbr [hex.NumDirections]int

	Boundary       bool
	InsideBoundary bool
	InsideDomain   bool

	DistToBoundary float64
	Partition      int
	DenseIndex     int
}

func newCell(id int, a hex.Axial, d float64) Cell {
	x, y := hex.ToPixel(a, d)
	c := Cell{
		ID:             id,
		R:              a.R,
		G:              a.G,
		B:              a.B(),
		X:              x,
		Y:              y,
		DistToBoundary: NoDistance,
		Partition:      NoPartition,
		DenseIndex:     -1,
	}
	for i := range c.nbr {
		c.nbr[i] = NoNeighbor
	}
	return c
}

// Axial returns the cell's axial coordinates.
func (c Cell) Axial() hex.Axial { return hex.Axial{R: c.R, G: c.G} }

// Position returns the Cartesian centre of the cell.
func (c Cell) Position() r2.Vec { return r2.Vec{X: c.X, Y: c.Y} }

// DistanceTo returns the Euclidean distance from the cell centre to p.
func (c Cell) DistanceTo(p r2.Vec) float64 {
	return r2.Norm(r2.Sub(c.Position(), p))
}

// Neighbor returns the arena index of the neighbor in direction d.
func (c Cell) Neighbor(d hex.Direction) (int, bool) {
	n := c.nbr[d]
	return n, n != NoNeighbor
}

// HasNeighbor reports whether the slot for direction d is occupied.
func (c Cell) HasNeighbor(d hex.Direction) bool { return c.nbr[d] != NoNeighbor }

// NumNeighbors counts the occupied neighbor slots.
func (c Cell) NumNeighbors() int {
	n := 0
	for _, v := range c.nbr {
		if v != NoNeighbor {
			n++
		}
	}
	return n
}

// setNeighbor writes one slot. The reciprocal slot is the caller's job.
func (c *Cell) setNeighbor(d hex.Direction, idx int) { c.nbr[d] = idx }

// clearNeighbor empties one slot. The reciprocal slot is the caller's job.
func (c *Cell) clearNeighbor(d hex.Direction) { c.nbr[d] = NoNeighbor }

// Flags packs the membership booleans.
func (c Cell) Flags() Flags {
	var f Flags
	if c.Boundary {
		f |= FlagBoundary
	}
	if c.InsideBoundary {
		f |= FlagInsideBoundary
	}
	if c.InsideDomain {
		f |= FlagInsideDomain
	}
	return f
}

func (c Cell) String() string {
	return fmt.Sprintf("cell %d (r,g,b)=(%d,%d,%d) (x,y)=(%.3f,%.3f) nbr=%v flags=%03b dist=%.3f",
		c.ID, c.R, c.G, c.B, c.X, c.Y, c.nbr, c.Flags(), c.DistToBoundary)
}
