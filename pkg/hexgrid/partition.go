package hexgrid

import "github.com/gravitas-games/hexmesh/pkg/hex"

// Growth sides of a partition, visited in this order on every pass.
const (
	growEast = iota
	growNorth
	growWest
	growSouth
	numGrowSides
)

// Len returns the number of axial positions inside e.
func (e Extents) Len() int {
	return (e.RMax - e.RMin + 1) * (e.GMax - e.GMin + 1)
}

// Contains reports whether a lies inside e.
func (e Extents) Contains(a hex.Axial) bool {
	return a.R >= e.RMin && a.R <= e.RMax && a.G >= e.GMin && a.G <= e.GMax
}

// grown returns e extended by one strip on side.
func (e Extents) grown(side int) Extents {
	switch side {
	case growEast:
		e.RMax++
	case growNorth:
		e.GMax++
	case growWest:
		e.RMin--
	case growSouth:
		e.GMin--
	}
	return e
}

// strip lists the axial positions that grown(side) would add.
func (e Extents) strip(side int) []hex.Axial {
	var out []hex.Axial
	switch side {
	case growEast, growWest:
		r := e.RMax + 1
		if side == growWest {
			r = e.RMin - 1
		}
		for g := e.GMin; g <= e.GMax; g++ {
			out = append(out, hex.Axial{R: r, G: g})
		}
	case growNorth, growSouth:
		g := e.GMax + 1
		if side == growSouth {
			g = e.GMin - 1
		}
		for r := e.RMin; r <= e.RMax; r++ {
			out = append(out, hex.Axial{R: r, G: g})
		}
	}
	return out
}

// allocatePartitions grows up to MaxPartitions axial parallelograms inside
// the boundary and tags their cells with the partition number. The first
// grows from the cell nearest the boundary centroid, later ones from the
// unpartitioned interior cell farthest from the boundary. Allocation stops
// at the first parallelogram smaller than MinPartitionCells.
func (g *Grid) allocatePartitions() []Extents {
	limit := g.params.MaxPartitions
	if limit <= 0 || len(g.cells) == 0 {
		return nil
	}
	minCells := max(g.params.MinPartitionCells, 1)
	idx := g.axialIndex()

	var boxes []Extents
	seed := g.NearestCell(g.centroid)
	for len(boxes) < limit {
		if len(boxes) > 0 {
			if seed = g.partitionSeed(); seed < 0 {
				break
			}
		}
		box, ok := g.growParallelogram(seed, idx)
		if !ok || box.Len() < minCells {
			break
		}
		p := len(boxes)
		for r := box.RMin; r <= box.RMax; r++ {
			for gg := box.GMin; gg <= box.GMax; gg++ {
				g.cells[idx[hex.Axial{R: r, G: gg}]].Partition = p
			}
		}
		boxes = append(boxes, box)
		Logger().Debug("hexgrid: partition", "index", p, "extents", box, "cells", box.Len())
	}
	return boxes
}

// partitionSeed returns the free interior cell with the largest distance
// to boundary, or -1.
func (g *Grid) partitionSeed() int {
	best := -1
	for i := range g.cells {
		c := &g.cells[i]
		if c.Boundary || !c.InsideBoundary || c.Partition != NoPartition {
			continue
		}
		if best < 0 || c.DistToBoundary > g.cells[best].DistToBoundary {
			best = i
		}
	}
	return best
}

// growParallelogram expands a one-cell box around seed. Each pass tries
// every side once; a side stops for good as soon as its next strip holds a
// position with no cell, a boundary cell or a cell of an earlier partition.
func (g *Grid) growParallelogram(seed int, idx map[hex.Axial]int) (Extents, bool) {
	free := func(a hex.Axial) bool {
		i, ok := idx[a]
		if !ok {
			return false
		}
		c := &g.cells[i]
		return !c.Boundary && c.Partition == NoPartition
	}

	a := g.cells[seed].Axial()
	if !free(a) {
		return Extents{}, false
	}
	box := Extents{RMin: a.R, RMax: a.R, GMin: a.G, GMax: a.G}
	var stopped [numGrowSides]bool
	for active := numGrowSides; active > 0; {
		for side := range stopped {
			if stopped[side] {
				continue
			}
			ok := true
			for _, p := range box.strip(side) {
				if !free(p) {
					ok = false
					break
				}
			}
			if ok {
				box = box.grown(side)
				continue
			}
			stopped[side] = true
			active--
		}
	}
	return box, true
}

// partitionOrder lists the cells of box row by row from its south-west
// corner, east along each row and north-east between rows.
func (g *Grid) partitionOrder(box Extents) []int {
	idx := g.axialIndex()
	order := make([]int, 0, box.Len())
	for gg := box.GMin; gg <= box.GMax; gg++ {
		for r := box.RMin; r <= box.RMax; r++ {
			order = append(order, idx[hex.Axial{R: r, G: gg}])
		}
	}
	return order
}
