package hexgrid

import (
	"fmt"

	"github.com/gravitas-games/hexmesh/pkg/hex"
)

// Extents are inclusive axial index bounds.
type Extents struct {
	RMin, RMax int
	GMin, GMax int
}

// domainBox records the regular domain chosen by Prune so that Compact can
// raster it. For Rectangle, RMin/RMax bound the row-corrected column.
type domainBox struct {
	Extents
	rows, cols int
}

// Prune classifies every cell, removes those outside the retained region
// and renumbers the survivors 0..N-1 in arena order. It then computes the
// distance to boundary of every survivor.
//
// For Boundary and SubParallelograms the retained region is the boundary
// and its interior. For Rectangle, Parallelogram and Hexagon it is a
// regular domain derived from the boundary extents; interior cells are
// still flagged InsideBoundary. Hexagon may be pruned without a boundary,
// in which case nothing is removed.
func (g *Grid) Prune() error {
	if g.params.Shape == Hexagon && !g.hasBoundary {
		if err := g.requireState("Prune", Built); err != nil {
			return err
		}
	} else if err := g.requireState("Prune", BoundaryFitted); err != nil {
		return err
	}

	before := len(g.cells)
	switch g.params.Shape {
	case Boundary, SubParallelograms:
		g.markInsideBoundary()
		for i := range g.cells {
			g.cells[i].InsideDomain = g.cells[i].InsideBoundary
		}
		g.discard(func(c *Cell) bool { return c.InsideBoundary })

	case Rectangle, Parallelogram, Hexagon:
		if err := g.markInsideDomain(); err != nil {
			for i := range g.cells {
				g.cells[i].InsideDomain = false
			}
			return err
		}
		g.discard(func(c *Cell) bool { return c.InsideDomain })
		if g.hasBoundary {
			g.markInsideBoundary()
		}

	default:
		return fmt.Errorf("%w: %v", ErrUnknownDomainShape, g.params.Shape)
	}

	if err := g.computeDistances(); err != nil {
		return err
	}
	g.state = Pruned
	Logger().Debug("hexgrid: pruned", "shape", g.params.Shape, "before", before, "after", len(g.cells))
	return nil
}

// markInsideBoundary flood-fills from the cell nearest the boundary
// centroid through non-boundary cells. Every reached cell and every
// boundary cell is marked InsideBoundary.
func (g *Grid) markInsideBoundary() {
	start := g.NearestCell(g.centroid)
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := &g.cells[cur]
		if c.InsideBoundary {
			continue
		}
		c.InsideBoundary = true
		if c.Boundary {
			continue
		}
		for _, n := range c.nbr {
			if n != NoNeighbor && !g.cells[n].InsideBoundary {
				stack = append(stack, n)
			}
		}
	}
	for i := range g.cells {
		if g.cells[i].Boundary {
			g.cells[i].InsideBoundary = true
		}
	}
}

// BoundaryExtents returns the axial bounds of the boundary cells, without
// growth buffer. ok is false when no cell is marked as boundary.
func (g *Grid) BoundaryExtents() (e Extents, ok bool) {
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Boundary {
			continue
		}
		if !ok {
			e = Extents{RMin: c.R, RMax: c.R, GMin: c.G, GMax: c.G}
			ok = true
			continue
		}
		e.RMin = min(e.RMin, c.R)
		e.RMax = max(e.RMax, c.R)
		e.GMin = min(e.GMin, c.G)
		e.GMax = max(e.GMax, c.G)
	}
	return e, ok
}

// markInsideDomain sets InsideDomain according to the configured regular
// shape and checks that the lattice covers the whole domain.
func (g *Grid) markInsideDomain() error {
	if g.params.Shape == Hexagon {
		for i := range g.cells {
			g.cells[i].InsideDomain = true
		}
		g.domain = domainBox{}
		return nil
	}

	ext, _ := g.BoundaryExtents()
	bh, bv := g.params.GrowthBufferHorz, g.params.GrowthBufferVert
	box := domainBox{Extents: Extents{GMin: ext.GMin - bv, GMax: ext.GMax + bv}}

	var inside func(c *Cell) bool
	switch g.params.Shape {
	case Parallelogram:
		box.RMin, box.RMax = ext.RMin-bh, ext.RMax+bh
		inside = func(c *Cell) bool {
			return c.R >= box.RMin && c.R <= box.RMax && c.G >= box.GMin && c.G <= box.GMax
		}
	case Rectangle:
		// Odd rows above GMin sit half a cell east of even rows, so a
		// vertical column drifts one step west in r every second row.
		first := true
		for i := range g.cells {
			c := &g.cells[i]
			if !c.Boundary {
				continue
			}
			col := rowColumn(c.Axial(), box.GMin)
			if first || col < box.RMin {
				box.RMin = col
			}
			if first || col > box.RMax {
				box.RMax = col
			}
			first = false
		}
		box.RMin -= bh
		box.RMax += bh
		inside = func(c *Cell) bool {
			if c.G < box.GMin || c.G > box.GMax {
				return false
			}
			col := rowColumn(c.Axial(), box.GMin)
			return col >= box.RMin && col <= box.RMax
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownDomainShape, g.params.Shape)
	}

	box.cols = box.RMax - box.RMin + 1
	box.rows = box.GMax - box.GMin + 1
	n := 0
	for i := range g.cells {
		c := &g.cells[i]
		c.InsideDomain = inside(c)
		if c.InsideDomain {
			n++
		}
	}
	if want := box.rows * box.cols; n != want {
		return fmt.Errorf("%w: %v domain needs %d cells, lattice provides %d",
			ErrDomainOutsideLattice, g.params.Shape, want, n)
	}
	g.domain = box
	return nil
}

// rowColumn is the column of a in a rectangle whose bottom row is g0.
func rowColumn(a hex.Axial, g0 int) int {
	return a.R + floorDiv(a.G-g0, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// discard disconnects every cell for which keep is false, compacts the
// arena and remaps the relations of the survivors.
func (g *Grid) discard(keep func(c *Cell) bool) {
	for i := range g.cells {
		if !keep(&g.cells[i]) {
			g.disconnect(i)
		}
	}

	remap := make([]int, len(g.cells))
	n := 0
	for i := range g.cells {
		if !keep(&g.cells[i]) {
			remap[i] = NoNeighbor
			continue
		}
		remap[i] = n
		g.cells[n] = g.cells[i]
		n++
	}
	if n == len(g.cells) {
		return
	}
	g.cells = g.cells[:n]
	g.renumber(remap)
	g.reduced = true
}

// renumber rewrites ids and relations through remap (old index to new).
func (g *Grid) renumber(remap []int) {
	for i := range g.cells {
		c := &g.cells[i]
		c.ID = i
		for d, n := range c.nbr {
			if n != NoNeighbor {
				c.nbr[d] = remap[n]
			}
		}
	}
}
