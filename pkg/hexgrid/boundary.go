package hexgrid

import (
	"fmt"

	"github.com/gravitas-games/hexmesh/pkg/hex"
	"gonum.org/v1/gonum/spatial/r2"
)

// SetBoundary maps an ordered, closed sequence of boundary sample points
// onto the lattice and marks one boundary cell per point. Points should be
// spaced at about half the cell spacing along the curve.
//
// The points are first translated so that their centroid is the lattice
// origin; BoundaryOffset reports the translation. Each point is then located
// by hill-climbing from the cell found for the previous point. The marked
// cells must form one contiguous set, otherwise ErrInvalidBoundary is
// returned and the grid stays Built.
func (g *Grid) SetBoundary(points []r2.Vec) error {
	if err := g.requireState("SetBoundary", Built); err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: no boundary points", ErrInvalidBoundary)
	}

	centroid := centroidOf(points)
	cur := g.NearestCell(r2.Vec{})
	for _, p := range points {
		cur = g.climbTowards(cur, r2.Sub(p, centroid))
		g.cells[cur].Boundary = true
	}

	if err := g.verifyBoundary(); err != nil {
		return err
	}
	g.offset = centroid
	g.centroid = r2.Vec{}
	g.hasBoundary = true
	g.state = BoundaryFitted
	Logger().Debug("hexgrid: boundary fitted",
		"points", len(points), "boundary_cells", g.countBoundary(),
		"offset_x", centroid.X, "offset_y", centroid.Y)
	return nil
}

// SetBoundaryXY is SetBoundary for points held in parallel coordinate
// slices.
func (g *Grid) SetBoundaryXY(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrSizeMismatch, len(xs), len(ys))
	}
	points := make([]r2.Vec, len(xs))
	for i := range xs {
		points[i] = r2.Vec{X: xs[i], Y: ys[i]}
	}
	return g.SetBoundary(points)
}

// SetBoundaryCells marks the cells at the given axial coordinates as the
// boundary. The coordinates are taken as-is; no re-centring is applied and
// the centroid is the mean position of the marked cells.
func (g *Grid) SetBoundaryCells(coords []hex.Axial) error {
	if err := g.requireState("SetBoundaryCells", Built); err != nil {
		return err
	}
	if len(coords) == 0 {
		return fmt.Errorf("%w: no boundary cells", ErrInvalidBoundary)
	}
	idx := g.axialIndex()
	marked := make([]int, 0, len(coords))
	for _, a := range coords {
		i, ok := idx[a]
		if !ok {
			return fmt.Errorf("%w: no cell at %v", ErrInvalidBoundary, a)
		}
		marked = append(marked, i)
	}

	positions := make([]r2.Vec, len(marked))
	for n, i := range marked {
		g.cells[i].Boundary = true
		positions[n] = g.cells[i].Position()
	}
	if err := g.verifyBoundary(); err != nil {
		return err
	}
	g.offset = r2.Vec{}
	g.centroid = centroidOf(positions)
	g.hasBoundary = true
	g.state = BoundaryFitted
	Logger().Debug("hexgrid: boundary cells set", "boundary_cells", g.countBoundary())
	return nil
}

// verifyBoundary clears the boundary marks and returns ErrInvalidBoundary
// when they are not contiguous.
func (g *Grid) verifyBoundary() error {
	if g.BoundaryContiguous() {
		return nil
	}
	total := g.countBoundary()
	for i := range g.cells {
		g.cells[i].Boundary = false
	}
	return fmt.Errorf("%w: %d boundary cells are not a contiguous sequence", ErrInvalidBoundary, total)
}

// climbTowards walks from start to the cell nearest p, each step moving to
// the neighbor that reduces the distance the most. It stops when no
// neighbor is closer than the current cell.
func (g *Grid) climbTowards(start int, p r2.Vec) int {
	cur := start
	best := g.cells[cur].DistanceTo(p)
	for {
		next := -1
		for _, n := range g.cells[cur].nbr {
			if n == NoNeighbor {
				continue
			}
			if d := g.cells[n].DistanceTo(p); d < best {
				best = d
				next = n
			}
		}
		if next < 0 {
			return cur
		}
		cur = next
	}
}

// BoundaryContiguous reports whether every boundary cell can be reached
// from the first one by stepping only between adjacent boundary cells. It
// is false when there are no boundary cells.
func (g *Grid) BoundaryContiguous() bool {
	first := -1
	total := 0
	for i := range g.cells {
		if g.cells[i].Boundary {
			if first < 0 {
				first = i
			}
			total++
		}
	}
	if first < 0 {
		return false
	}

	seen := make([]bool, len(g.cells))
	seen[first] = true
	reached := 1
	stack := []int{first}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.cells[cur].nbr {
			if n == NoNeighbor || seen[n] || !g.cells[n].Boundary {
				continue
			}
			seen[n] = true
			reached++
			stack = append(stack, n)
		}
	}
	return reached == total
}

func (g *Grid) countBoundary() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Boundary {
			n++
		}
	}
	return n
}

func centroidOf(points []r2.Vec) r2.Vec {
	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(points)), sum)
}
