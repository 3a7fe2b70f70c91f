package hexgrid

import (
	"fmt"

	"github.com/gravitas-games/hexmesh/pkg/hex"
)

// Dense is a group of cells flattened into parallel arrays. Index i in every
// slice refers to the same cell. Nbr[d][i] is the dense index of the
// neighbor of i in direction d, within the group named by NbrGroup[d][i]
// (-1 for Mesh.Dense, p for Mesh.Partitions[p]), or NoNeighbor.
type Dense struct {
	X, Y           []float64
	R, G, B        []int
	Flags          []Flags
	DistToBoundary []float64

	Nbr      [hex.NumDirections][]int
	NbrGroup [hex.NumDirections][]int

	// Raster shape for Rectangle, Parallelogram and partitions; zero when
	// the group has no row structure.
	RowLen  int
	NumRows int

	index map[hex.Axial]int
}

// Len returns the number of cells in the group.
func (d *Dense) Len() int { return len(d.X) }

// Neighbors returns the neighbor index table for direction dir.
func (d *Dense) Neighbors(dir hex.Direction) []int { return d.Nbr[dir] }

func (d *Dense) E() []int  { return d.Nbr[hex.E] }
func (d *Dense) NE() []int { return d.Nbr[hex.NE] }
func (d *Dense) NW() []int { return d.Nbr[hex.NW] }
func (d *Dense) W() []int  { return d.Nbr[hex.W] }
func (d *Dense) SW() []int { return d.Nbr[hex.SW] }
func (d *Dense) SE() []int { return d.Nbr[hex.SE] }

// Lookup returns the dense index of the cell at a.
func (d *Dense) Lookup(a hex.Axial) (int, bool) {
	i, ok := d.index[a]
	return i, ok
}

// Bounds is an axis-aligned box in lattice coordinates.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Mesh is the output of Compact.
type Mesh struct {
	Shape   DomainShape
	Spacing float64
	N       int    // Cells across all groups
	Bounds  Bounds // Extent of the boundary cells (of all cells without a boundary)

	// Dense holds every cell, or for SubParallelograms the cells outside
	// every partition.
	Dense Dense

	Partitions       []Dense
	PartitionExtents []Extents
}

// Compact serialises the surviving cells into a Mesh. Rectangle and
// Parallelogram domains are written row by row from the bottom-left cell;
// Hexagon and Boundary domains in arena order; SubParallelograms first
// allocates parallelogram partitions and writes each of them row by row,
// then the remaining cells in arena order.
//
// Compact may be called again on a compacted grid and returns identical
// arrays.
func (g *Grid) Compact() (*Mesh, error) {
	if err := g.requireState("Compact", Pruned, Compacted); err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i].DenseIndex = -1
		g.cells[i].Partition = NoPartition
	}

	m := &Mesh{
		Shape:   g.params.Shape,
		Spacing: g.params.Spacing,
		N:       len(g.cells),
		Bounds:  g.bounds(),
	}

	switch g.params.Shape {
	case Rectangle, Parallelogram:
		order, rows, err := g.rasterOrder(g.params.Shape == Rectangle)
		if err != nil {
			return nil, err
		}
		if rows != g.domain.rows {
			return nil, fmt.Errorf("%w: raster found %d rows, domain has %d", ErrInvalidState, rows, g.domain.rows)
		}
		g.assignDense(order)
		m.Dense = g.denseFrom(order)
		m.Dense.NumRows = g.domain.rows
		m.Dense.RowLen = g.domain.cols

	case Hexagon, Boundary:
		order := g.arenaOrder()
		g.assignDense(order)
		m.Dense = g.denseFrom(order)

	case SubParallelograms:
		boxes := g.allocatePartitions()
		orders := make([][]int, len(boxes))
		for p, box := range boxes {
			orders[p] = g.partitionOrder(box)
			g.assignDense(orders[p])
		}
		rest := g.arenaOrder()
		g.assignDense(rest)
		for p, box := range boxes {
			d := g.denseFrom(orders[p])
			d.RowLen = box.RMax - box.RMin + 1
			d.NumRows = box.GMax - box.GMin + 1
			m.Partitions = append(m.Partitions, d)
			m.PartitionExtents = append(m.PartitionExtents, box)
		}
		m.Dense = g.denseFrom(rest)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownDomainShape, g.params.Shape)
	}

	g.state = Compacted
	Logger().Debug("hexgrid: compacted",
		"shape", g.params.Shape, "cells", m.N, "partitions", len(m.Partitions), "remaining", m.Dense.Len())
	return m, nil
}

// arenaOrder lists the cells outside every partition in arena order.
func (g *Grid) arenaOrder() []int {
	order := make([]int, 0, len(g.cells))
	for i := range g.cells {
		if g.cells[i].Partition == NoPartition {
			order = append(order, i)
		}
	}
	return order
}

// rasterOrder walks the domain row by row. It starts at the bottom-left
// cell, found by walking west from a bottom-row cell, follows east links to
// the end of each row and then takes a carriage return from the row start:
// always north-east, or alternately north-east and north-west when the rows
// are staggered.
func (g *Grid) rasterOrder(staggered bool) (order []int, rows int, err error) {
	n := len(g.cells)
	if n == 0 {
		return nil, 0, nil
	}
	bottom := 0
	for i := range g.cells {
		if g.cells[i].G < g.cells[bottom].G {
			bottom = i
		}
	}
	start := bottom
	for {
		w, ok := g.cells[start].Neighbor(hex.W)
		if !ok {
			break
		}
		start = w
	}

	seen := make([]bool, n)
	order = make([]int, 0, n)
	rowStart := start
	northEast := true
	for {
		rows++
		for cur := rowStart; ; {
			if seen[cur] {
				return nil, 0, fmt.Errorf("%w: raster revisits cell %d", ErrInvalidState, cur)
			}
			seen[cur] = true
			order = append(order, cur)
			next, ok := g.cells[cur].Neighbor(hex.E)
			if !ok {
				break
			}
			cur = next
		}
		dir := hex.NE
		if !northEast {
			dir = hex.NW
		}
		next, ok := g.cells[rowStart].Neighbor(dir)
		if !ok {
			break
		}
		rowStart = next
		if staggered {
			northEast = !northEast
		}
	}
	if len(order) != n {
		return nil, 0, fmt.Errorf("%w: raster covered %d of %d cells", ErrInvalidState, len(order), n)
	}
	return order, rows, nil
}

// assignDense records each cell's position within its group.
func (g *Grid) assignDense(order []int) {
	for pos, id := range order {
		g.cells[id].DenseIndex = pos
	}
}

// denseFrom copies the cells in order into a new Dense. assignDense must
// already have run for every group so that cross-group neighbors resolve.
func (g *Grid) denseFrom(order []int) Dense {
	n := len(order)
	d := Dense{
		X:              make([]float64, n),
		Y:              make([]float64, n),
		R:              make([]int, n),
		G:              make([]int, n),
		B:              make([]int, n),
		Flags:          make([]Flags, n),
		DistToBoundary: make([]float64, n),
		index:          make(map[hex.Axial]int, n),
	}
	for dir := range d.Nbr {
		d.Nbr[dir] = make([]int, n)
		d.NbrGroup[dir] = make([]int, n)
	}
	for pos, id := range order {
		c := &g.cells[id]
		d.X[pos], d.Y[pos] = c.X, c.Y
		d.R[pos], d.G[pos], d.B[pos] = c.R, c.G, c.B
		d.Flags[pos] = c.Flags()
		d.DistToBoundary[pos] = c.DistToBoundary
		d.index[c.Axial()] = pos
		for dir, nb := range c.nbr {
			if nb == NoNeighbor {
				d.Nbr[dir][pos] = NoNeighbor
				d.NbrGroup[dir][pos] = NoPartition
				continue
			}
			d.Nbr[dir][pos] = g.cells[nb].DenseIndex
			d.NbrGroup[dir][pos] = g.cells[nb].Partition
		}
	}
	return d
}

// bounds returns the positional extent of the boundary cells, or of all
// cells when there is no boundary.
func (g *Grid) bounds() Bounds {
	var b Bounds
	first := true
	for pass := 0; pass < 2 && first; pass++ {
		for i := range g.cells {
			c := &g.cells[i]
			if pass == 0 && !c.Boundary {
				continue
			}
			if first {
				b = Bounds{XMin: c.X, XMax: c.X, YMin: c.Y, YMax: c.Y}
				first = false
				continue
			}
			b.XMin = min(b.XMin, c.X)
			b.XMax = max(b.XMax, c.X)
			b.YMin = min(b.YMin, c.Y)
			b.YMax = max(b.YMax, c.Y)
		}
	}
	return b
}
