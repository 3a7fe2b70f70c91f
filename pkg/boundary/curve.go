// Package boundary produces ordered, closed point sequences for fitting onto
// a hexgrid lattice.
package boundary

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	ErrInvalidStep  = errors.New("boundary: invalid sampling step")
	ErrDegenerate   = errors.New("boundary: degenerate curve")
	ErrSizeMismatch = errors.New("boundary: size mismatch")
)

// Curve is a closed curve that can be sampled into points no more than step
// apart. The last point is not repeated; the curve closes back to the first.
type Curve interface {
	Sample(step float64) ([]r2.Vec, error)
}

// Polygon is a closed polygon. The closing edge from the last vertex back to
// the first is implied.
type Polygon struct {
	Vertices []r2.Vec
}

// Perimeter returns the length of the closed polygon.
func (p Polygon) Perimeter() float64 {
	var sum float64
	for i, v := range p.Vertices {
		w := p.Vertices[(i+1)%len(p.Vertices)]
		sum += r2.Norm(r2.Sub(w, v))
	}
	return sum
}

// Sample splits every edge into equal segments no longer than step. Each
// vertex is emitted as a sample.
func (p Polygon) Sample(step float64) ([]r2.Vec, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	if len(p.Vertices) < 3 {
		return nil, fmt.Errorf("%w: polygon needs 3 vertices, got %d", ErrDegenerate, len(p.Vertices))
	}
	if p.Perimeter() == 0 {
		return nil, fmt.Errorf("%w: polygon has zero perimeter", ErrDegenerate)
	}

	var pts []r2.Vec
	for i, v := range p.Vertices {
		edge := r2.Sub(p.Vertices[(i+1)%len(p.Vertices)], v)
		l := r2.Norm(edge)
		if l == 0 {
			continue
		}
		n := int(math.Ceil(l / step))
		for j := 0; j < n; j++ {
			pts = append(pts, r2.Add(v, r2.Scale(float64(j)/float64(n), edge)))
		}
	}
	return pts, nil
}

// Ellipse is an axis-aligned ellipse with semi-axes A (along x) and B
// (along y).
type Ellipse struct {
	Center r2.Vec
	A, B   float64
}

// Sample returns points at equal parametric angle, starting on the positive
// x semi-axis and running counter-clockwise.
func (e Ellipse) Sample(step float64) ([]r2.Vec, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	if !(e.A > 0) || !(e.B > 0) {
		return nil, fmt.Errorf("%w: semi-axes must be positive, got %f,%f", ErrDegenerate, e.A, e.B)
	}
	// A parametric step of dt moves at most max(A,B)*dt along the curve.
	n := max(int(math.Ceil(2*math.Pi*max(e.A, e.B)/step)), 8)
	pts := make([]r2.Vec, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = r2.Vec{X: e.Center.X + e.A*cos, Y: e.Center.Y + e.B*sin}
	}
	return pts, nil
}

// Centroid returns the mean of points, or the zero vector for none.
func Centroid(points []r2.Vec) r2.Vec {
	if len(points) == 0 {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(points)), sum)
}

// FromXY zips parallel coordinate slices into points.
func FromXY(xs, ys []float64) ([]r2.Vec, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrSizeMismatch, len(xs), len(ys))
	}
	pts := make([]r2.Vec, len(xs))
	for i := range xs {
		pts[i] = r2.Vec{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}

func checkStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: step must be positive and finite, got %f", ErrInvalidStep, step)
	}
	return nil
}
