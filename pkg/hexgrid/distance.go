package hexgrid

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// minChunk is the smallest number of cells handed to one worker.
const minChunk = 256

// computeDistances sets DistToBoundary on every cell: zero on the boundary,
// the distance to the nearest boundary cell centre for interior cells and
// NoDistance for everything else. The search is exhaustive; the number of
// boundary cells grows with the perimeter, not the area.
func (g *Grid) computeDistances() error {
	var boundary []r2.Vec
	for i := range g.cells {
		if g.cells[i].Boundary {
			boundary = append(boundary, g.cells[i].Position())
		}
	}

	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c := &g.cells[i]
			switch {
			case c.Boundary:
				c.DistToBoundary = 0
			case !c.InsideBoundary || len(boundary) == 0:
				c.DistToBoundary = NoDistance
			default:
				best := math.Inf(1)
				p := c.Position()
				for _, b := range boundary {
					if d := r2.Norm(r2.Sub(p, b)); d < best {
						best = d
					}
				}
				c.DistToBoundary = best
			}
		}
	}

	workers := g.params.Workers
	n := len(g.cells)
	if workers <= 1 || n < 2*minChunk {
		fill(0, n)
		return nil
	}

	chunk := max((n+workers-1)/workers, minChunk)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		eg.Go(func() error {
			fill(lo, hi)
			return nil
		})
	}
	return eg.Wait()
}
