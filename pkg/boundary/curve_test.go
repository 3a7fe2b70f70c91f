package boundary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gravitas-games/hexmesh/pkg/hexgrid"
)

func requireClosedSpacing(t *testing.T, pts []r2.Vec, step float64) {
	t.Helper()
	require.NotEmpty(t, pts)
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		assert.LessOrEqual(t, r2.Norm(r2.Sub(q, p)), step+1e-9, "points %d and %d", i, (i+1)%len(pts))
	}
}

func TestPolygonSample(t *testing.T) {
	sq := Polygon{Vertices: []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
	assert.InDelta(t, 4.0, sq.Perimeter(), 1e-12)

	pts, err := sq.Sample(0.25)
	require.NoError(t, err)
	assert.Len(t, pts, 16)
	assert.Equal(t, r2.Vec{}, pts[0])
	assert.Equal(t, r2.Vec{X: 1, Y: 0}, pts[4])
	assert.Equal(t, r2.Vec{X: 1, Y: 0.5}, pts[6])
	requireClosedSpacing(t, pts, 0.25)

	fine, err := sq.Sample(0.03)
	require.NoError(t, err)
	requireClosedSpacing(t, fine, 0.03)

	c := Centroid(pts)
	assert.InDelta(t, 0.5, c.X, 1e-9)
	assert.InDelta(t, 0.5, c.Y, 1e-9)
}

func TestPolygonDegenerate(t *testing.T) {
	_, err := Polygon{Vertices: []r2.Vec{{}, {X: 1}}}.Sample(0.1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Polygon{Vertices: []r2.Vec{{}, {}, {}}}.Sample(0.1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Polygon{Vertices: []r2.Vec{{}, {X: 1}, {Y: 1}}}.Sample(0)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestEllipseSample(t *testing.T) {
	e := Ellipse{Center: r2.Vec{X: 2, Y: -1}, A: 0.6, B: 0.3}
	pts, err := e.Sample(0.02)
	require.NoError(t, err)
	requireClosedSpacing(t, pts, 0.02)
	for _, p := range pts {
		u := (p.X - 2) / 0.6
		v := (p.Y + 1) / 0.3
		assert.InDelta(t, 1.0, u*u+v*v, 1e-9)
	}
	c := Centroid(pts)
	assert.InDelta(t, 2.0, c.X, 1e-9)
	assert.InDelta(t, -1.0, c.Y, 1e-9)

	_, err = Ellipse{A: 1}.Sample(0.1)
	assert.ErrorIs(t, err, ErrDegenerate)
	_, err = e.Sample(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestFromXY(t *testing.T) {
	pts, err := FromXY([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []r2.Vec{{X: 1, Y: 3}, {X: 2, Y: 4}}, pts)

	_, err = FromXY([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	assert.Equal(t, r2.Vec{}, Centroid(nil))
}

func TestEllipseFitsLattice(t *testing.T) {
	const d = 0.05
	pts, err := Ellipse{A: 0.5, B: 0.3}.Sample(d / 2)
	require.NoError(t, err)

	p := hexgrid.DefaultParams()
	p.Spacing = d
	p.Span = 2
	p.Shape = hexgrid.Boundary
	g, err := hexgrid.NewGrid(p)
	require.NoError(t, err)
	require.NoError(t, g.SetBoundary(pts))
	assert.True(t, g.BoundaryContiguous())
	require.NoError(t, g.Prune())

	// The ellipse covers pi*A*B; one cell covers sqrt(3)/2 d^2.
	area := math.Pi * 0.5 * 0.3
	cells := area / (math.Sqrt(3) / 2 * d * d)
	assert.Greater(t, float64(g.Len()), 0.9*cells)
	assert.Less(t, float64(g.Len()), 1.4*cells)
}
