package hexgrid

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gravitas-games/hexmesh/pkg/hex"
)

func TestNewGridCellCount(t *testing.T) {
	for k := 0; k <= 8; k++ {
		p := DefaultParams()
		p.Rings = k
		p.Span = 0
		p.Shape = Hexagon
		g, err := NewGrid(p)
		require.NoError(t, err)
		assert.Equal(t, 1+3*k*(k+1), g.Len(), "rings=%d", k)
		assert.Equal(t, k, g.MaxRing())
		assert.Equal(t, Built, g.State())
		require.NoError(t, g.CheckSymmetry())

		for i := 0; i < g.Len(); i++ {
			c := g.Cell(i)
			assert.Equal(t, i, c.ID)
			assert.Equal(t, 0, c.R+c.G+c.B)
			ring := hex.Distance(hex.Axial{}, c.Axial())
			if ring < k {
				assert.Equal(t, 6, c.NumNeighbors(), "interior cell %v", c.Axial())
			} else {
				assert.Less(t, c.NumNeighbors(), 6, "outer cell %v", c.Axial())
			}
		}
	}
}

func TestNewGridRingsFromSpan(t *testing.T) {
	p := DefaultParams()
	p.Spacing = 0.5
	p.Span = 4
	g, err := NewGrid(p)
	require.NoError(t, err)
	assert.Equal(t, 4, g.MaxRing())
	assert.Equal(t, 61, g.Len())
}

func TestNewGridPositions(t *testing.T) {
	p := DefaultParams()
	p.Spacing = 2
	p.Rings = 3
	g, err := NewGrid(p)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		for d := hex.Direction(0); d < hex.NumDirections; d++ {
			n, ok := c.Neighbor(d)
			if !ok {
				continue
			}
			nc := g.Cell(n)
			assert.InDelta(t, 2.0, math.Hypot(nc.X-c.X, nc.Y-c.Y), 1e-9)
		}
	}
}

func TestVertices(t *testing.T) {
	p := DefaultParams()
	p.Rings = 3
	g, err := NewGrid(p)
	require.NoError(t, err)

	want := map[hex.Direction]hex.Axial{
		hex.E:  {R: 3, G: 0},
		hex.NE: {R: 0, G: 3},
		hex.NW: {R: -3, G: 3},
		hex.W:  {R: -3, G: 0},
		hex.SW: {R: 0, G: -3},
		hex.SE: {R: 3, G: -3},
	}
	for d, a := range want {
		id, ok := g.Vertex(d)
		require.True(t, ok)
		assert.Equal(t, a, g.Cell(id).Axial(), "vertex %v", d)
	}
}

func TestXRange(t *testing.T) {
	p := DefaultParams()
	p.Rings = 2
	g, err := NewGrid(p)
	require.NoError(t, err)

	lo, hi := g.XRange(0)
	assert.InDelta(t, -2.0, lo, 1e-9)
	assert.InDelta(t, 2.0, hi, 1e-9)

	lo, hi = g.XRange(math.Pi / 2)
	assert.InDelta(t, -math.Sqrt(3), lo, 1e-9)
	assert.InDelta(t, math.Sqrt(3), hi, 1e-9)
}

func TestNearestCell(t *testing.T) {
	p := DefaultParams()
	p.Rings = 3
	g, err := NewGrid(p)
	require.NoError(t, err)

	id := g.NearestCell(r2.Vec{X: 1.9, Y: 0.1})
	assert.Equal(t, hex.Axial{R: 2, G: 0}, g.Cell(id).Axial())
}

func TestGridString(t *testing.T) {
	p := DefaultParams()
	p.Rings = 1
	g, err := NewGrid(p)
	require.NoError(t, err)
	s := g.String()
	assert.Contains(t, s, "Hex grid with 7 hexes in 1 rings, state Built")
	assert.Contains(t, s, "cell 6 ")
	assert.Contains(t, fmt.Sprint(g.Cell(0)), "cell 0 (r,g,b)=(0,0,0)")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	p := DefaultParams()
	p.Rings = 1
	_, err := NewGrid(p)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hexgrid: lattice built")
	assert.Contains(t, buf.String(), "cells=7")

	SetLogger(nil)
	buf.Reset()
	_, err = NewGrid(p)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
