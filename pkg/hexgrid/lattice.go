package hexgrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/gravitas-games/hexmesh/pkg/hex"
	"gonum.org/v1/gonum/spatial/r2"
)

// Grid owns the cell arena and drives the pipeline.
type Grid struct {
	params  Params
	maxRing int
	cells   []Cell
	state   State

	hasBoundary bool
	centroid    r2.Vec // boundary centroid in lattice coordinates
	offset      r2.Vec // translation removed from the boundary points

	// Arena indices of the six outer-ring vertices, valid until the first
	// cell is discarded.
	vertices [hex.NumDirections]int
	reduced  bool

	domain domainBox
}

// sideVertex names the vertex at which each side of a ring walk starts.
var sideVertex = [hex.NumDirections]hex.Direction{hex.NW, hex.NE, hex.E, hex.SE, hex.SW, hex.W}

// NewGrid validates p and builds the full hexagonal lattice.
func NewGrid(p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{params: p, maxRing: p.MaxRing()}
	g.build()
	Logger().Debug("hexgrid: lattice built",
		"rings", g.maxRing, "cells", len(g.cells), "spacing", p.Spacing, "shape", p.Shape)
	return g, nil
}

// build creates the central cell and then each ring k as six walks of k
// cells. Every new cell is linked to the previous cell of its ring and to
// one (corner) or two (side) cells of ring k-1; the last cell of a ring is
// linked back to the first.
func (g *Grid) build() {
	d := g.params.Spacing
	g.cells = make([]Cell, 0, hex.DiskSize(g.maxRing))
	g.cells = append(g.cells, newCell(0, hex.Axial{}, d))
	for i := range g.vertices {
		g.vertices[i] = 0
	}

	prevStart := 0
	for k := 1; k <= g.maxRing; k++ {
		start := len(g.cells)
		inner := k - 1
		for p, a := range hex.Ring(hex.Axial{}, k) {
			id := len(g.cells)
			g.cells = append(g.cells, newCell(id, a, d))
			if p > 0 {
				g.link(id-1, id)
			}
			side, step := p/k, p%k
			if step == 0 && k == g.maxRing {
				g.vertices[sideVertex[side]] = id
			}
			if inner == 0 {
				g.link(prevStart, id)
				continue
			}
			j := side*inner + step
			if step > 0 {
				g.link(prevStart+j-1, id)
			}
			g.link(prevStart+j%(6*inner), id)
		}
		g.link(len(g.cells)-1, start)
		prevStart = start
	}
}

// link sets the relation between two adjacent cells on both ends.
func (g *Grid) link(a, b int) {
	ca, cb := &g.cells[a], &g.cells[b]
	dir, ok := hex.DirectionOf(cb.Axial().Sub(ca.Axial()))
	if !ok {
		panic(fmt.Sprintf("hexgrid: link between non-adjacent cells %v and %v", ca.Axial(), cb.Axial()))
	}
	ca.setNeighbor(dir, b)
	cb.setNeighbor(dir.Opposite(), a)
}

// disconnect clears all relations of cell id and the reciprocal relation on
// each of its neighbors.
func (g *Grid) disconnect(id int) {
	c := &g.cells[id]
	for d := hex.Direction(0); d < hex.NumDirections; d++ {
		if n, ok := c.Neighbor(d); ok {
			g.cells[n].clearNeighbor(d.Opposite())
			c.clearNeighbor(d)
		}
	}
}

// Params returns the parameters the grid was built with.
func (g *Grid) Params() Params { return g.params }

// State returns the current pipeline state.
func (g *Grid) State() State { return g.state }

// MaxRing returns the number of rings the lattice was built with.
func (g *Grid) MaxRing() int { return g.maxRing }

// Len returns the number of live cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns a copy of the cell at arena index id.
func (g *Grid) Cell(id int) Cell { return g.cells[id] }

// Vertex returns the arena index of the outer-ring vertex named by dir. It
// reports false once cells have been discarded.
func (g *Grid) Vertex(dir hex.Direction) (int, bool) {
	if g.reduced {
		return 0, false
	}
	return g.vertices[dir], true
}

// BoundaryCentroid returns the boundary centroid in lattice coordinates.
func (g *Grid) BoundaryCentroid() r2.Vec { return g.centroid }

// BoundaryOffset returns the translation that was subtracted from the
// boundary points to centre them on the lattice origin.
func (g *Grid) BoundaryOffset() r2.Vec { return g.offset }

// NearestCell returns the arena index of the cell closest to p by
// exhaustive search.
func (g *Grid) NearestCell(p r2.Vec) int {
	nearest := -1
	best := math.Inf(1)
	for i := range g.cells {
		if d := g.cells[i].DistanceTo(p); d < best {
			best = d
			nearest = i
		}
	}
	return nearest
}

// XRange returns the smallest and largest projection of the cell centres
// onto the direction at angle phi (radians) from the x axis.
func (g *Grid) XRange(phi float64) (lo, hi float64) {
	sin, cos := math.Sincos(phi)
	for i := range g.cells {
		x := g.cells[i].X*cos + g.cells[i].Y*sin
		if i == 0 || x < lo {
			lo = x
		}
		if i == 0 || x > hi {
			hi = x
		}
	}
	return lo, hi
}

// CheckSymmetry verifies that every relation has its reciprocal and points
// at an adjacent live cell.
func (g *Grid) CheckSymmetry() error {
	for i := range g.cells {
		c := &g.cells[i]
		for d := hex.Direction(0); d < hex.NumDirections; d++ {
			n, ok := c.Neighbor(d)
			if !ok {
				continue
			}
			if n < 0 || n >= len(g.cells) {
				return fmt.Errorf("cell %d: %v neighbor %d out of range", i, d, n)
			}
			if back, _ := g.cells[n].Neighbor(d.Opposite()); back != i {
				return fmt.Errorf("cell %d: %v neighbor %d points back to %d", i, d, n, back)
			}
			if g.cells[n].Axial() != c.Axial().Neighbor(d) {
				return fmt.Errorf("cell %d: %v neighbor %d at %v is not adjacent", i, d, n, g.cells[n].Axial())
			}
		}
	}
	return nil
}

// axialIndex maps the coordinates of every live cell to its arena index.
func (g *Grid) axialIndex() map[hex.Axial]int {
	idx := make(map[hex.Axial]int, len(g.cells))
	for i := range g.cells {
		idx[g.cells[i].Axial()] = i
	}
	return idx
}

func (g *Grid) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hex grid with %d hexes in %d rings, state %s\n", len(g.cells), g.maxRing, g.state)
	for i := range g.cells {
		sb.WriteString(g.cells[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
