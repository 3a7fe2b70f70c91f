package hexgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gravitas-games/hexmesh/pkg/hex"
)

// unitSquare samples the perimeter of [0,1]x[0,1] counter-clockwise from
// the origin with the given step.
func unitSquare(step float64) []r2.Vec {
	n := int(math.Round(1 / step))
	pts := make([]r2.Vec, 0, 4*n)
	for i := 0; i < n; i++ {
		pts = append(pts, r2.Vec{X: float64(i) * step, Y: 0})
	}
	for i := 0; i < n; i++ {
		pts = append(pts, r2.Vec{X: 1, Y: float64(i) * step})
	}
	for i := 0; i < n; i++ {
		pts = append(pts, r2.Vec{X: 1 - float64(i)*step, Y: 1})
	}
	for i := 0; i < n; i++ {
		pts = append(pts, r2.Vec{X: 0, Y: 1 - float64(i)*step})
	}
	return pts
}

func circle(center r2.Vec, radius float64, n int) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = r2.Vec{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	return pts
}

// squareGrid builds a grid with spacing d and span 5 around the unit square and fits
// the square sampled at d/2.
func squareGrid(t *testing.T, shape DomainShape, d float64, tweak func(*Params)) *Grid {
	t.Helper()
	p := DefaultParams()
	p.Spacing = d
	p.Span = 5
	p.Shape = shape
	if tweak != nil {
		tweak(&p)
	}
	g, err := NewGrid(p)
	require.NoError(t, err)
	require.NoError(t, g.SetBoundary(unitSquare(d/2)))
	return g
}

func countBoundary(g *Grid) int {
	n := 0
	for i := 0; i < g.Len(); i++ {
		if c := g.Cell(i); c.Boundary {
			n++
		}
	}
	return n
}

func group(m *Mesh, p int) *Dense {
	if p == NoPartition {
		return &m.Dense
	}
	return &m.Partitions[p]
}

// requireReciprocal checks that every dense neighbor reference resolves to a
// cell that refers back through the opposite direction.
func requireReciprocal(t *testing.T, m *Mesh) {
	t.Helper()
	groups := []int{NoPartition}
	for p := range m.Partitions {
		groups = append(groups, p)
	}
	for _, gi := range groups {
		src := group(m, gi)
		for i := 0; i < src.Len(); i++ {
			for d := hex.Direction(0); d < hex.NumDirections; d++ {
				n := src.Nbr[d][i]
				if n == NoNeighbor {
					continue
				}
				dst := group(m, src.NbrGroup[d][i])
				require.Less(t, n, dst.Len())
				require.Equal(t, i, dst.Nbr[d.Opposite()][n], "group %d cell %d dir %v", gi, i, d)
				require.Equal(t, gi, dst.NbrGroup[d.Opposite()][n], "group %d cell %d dir %v", gi, i, d)
				want := hex.Axial{R: src.R[i], G: src.G[i]}.Neighbor(d)
				require.Equal(t, want, hex.Axial{R: dst.R[n], G: dst.G[n]})
			}
		}
	}
}
