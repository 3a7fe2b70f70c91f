// Package meshplot renders a compacted hexgrid mesh as a scatter plot of
// cell centres.
package meshplot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gravitas-games/hexmesh/pkg/hexgrid"
)

var (
	boundaryColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	interiorColor = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	paddingColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}

	// Cycled for sub-parallelogram partitions.
	partitionColors = []color.Color{
		color.RGBA{R: 30, G: 150, B: 60, A: 255},
		color.RGBA{R: 230, G: 140, B: 20, A: 255},
		color.RGBA{R: 130, G: 50, B: 170, A: 255},
		color.RGBA{R: 20, G: 160, B: 170, A: 255},
	}
)

// Plot builds a scatter plot of every cell in m. Boundary cells, interior
// cells, cells outside the boundary and each partition get their own series.
func Plot(m *hexgrid.Mesh, title string) (*plot.Plot, error) {
	if m == nil {
		return nil, errors.New("meshplot: nil mesh")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var bnd, inner, pad plotter.XYs
	d := &m.Dense
	for i := 0; i < d.Len(); i++ {
		pt := plotter.XY{X: d.X[i], Y: d.Y[i]}
		switch f := d.Flags[i]; {
		case f&hexgrid.FlagBoundary != 0:
			bnd = append(bnd, pt)
		case f&hexgrid.FlagInsideBoundary != 0:
			inner = append(inner, pt)
		default:
			pad = append(pad, pt)
		}
	}

	radius := vg.Points(2)
	for _, s := range []struct {
		name string
		pts  plotter.XYs
		c    color.Color
	}{
		{"boundary", bnd, boundaryColor},
		{"interior", inner, interiorColor},
		{"outside boundary", pad, paddingColor},
	} {
		if err := addSeries(p, s.name, s.pts, s.c, radius); err != nil {
			return nil, err
		}
	}

	for n := range m.Partitions {
		part := &m.Partitions[n]
		pts := make(plotter.XYs, part.Len())
		for i := range pts {
			pts[i] = plotter.XY{X: part.X[i], Y: part.Y[i]}
		}
		c := partitionColors[n%len(partitionColors)]
		if err := addSeries(p, fmt.Sprintf("partition %d", n), pts, c, radius); err != nil {
			return nil, err
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	return p, nil
}

func addSeries(p *plot.Plot, name string, pts plotter.XYs, c color.Color, radius vg.Length) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to create %s series: %w", name, err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	p.Legend.Add(name, s)
	return nil
}

// Save writes the plot of m to path as a square image sizeCm on each side.
// The image format follows the file extension.
func Save(m *hexgrid.Mesh, path string, sizeCm float64) error {
	if m == nil {
		return errors.New("meshplot: nil mesh")
	}
	p, err := Plot(m, fmt.Sprintf("%s mesh, %d cells", m.Shape, m.N))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	size := vg.Length(sizeCm) * vg.Centimeter
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
