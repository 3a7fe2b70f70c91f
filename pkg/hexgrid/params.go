package hexgrid

import (
	"fmt"
	"math"
	"strings"
)

// DomainShape selects the region retained by Prune and the raster order
// used by Compact.
type DomainShape int

const (
	// Rectangle keeps a row-staggered rectangle enclosing the boundary.
	Rectangle DomainShape = iota
	// Parallelogram keeps the axial bounding box of the boundary.
	Parallelogram
	// Hexagon keeps the whole lattice.
	Hexagon
	// Boundary keeps the cells enclosed by the boundary.
	Boundary
	// SubParallelograms keeps the cells enclosed by the boundary and
	// partitions them into parallelogram blocks on compaction.
	SubParallelograms
)

var shapeNames = map[DomainShape]string{
	Rectangle:         "rectangle",
	Parallelogram:     "parallelogram",
	Hexagon:           "hexagon",
	Boundary:          "boundary",
	SubParallelograms: "subparallelograms",
}

func (s DomainShape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("DomainShape(%d)", int(s))
}

// Valid reports whether s is one of the declared shapes.
func (s DomainShape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseDomainShape converts a shape name (case-insensitive) to a DomainShape.
func ParseDomainShape(name string) (DomainShape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "")
	n = strings.ReplaceAll(n, "-", "")
	for s, sn := range shapeNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDomainShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s DomainShape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDomainShape, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *DomainShape) UnmarshalText(text []byte) error {
	v, err := ParseDomainShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Params configures a Grid. It is passed by value through the pipeline and
// never modified after NewGrid.
type Params struct {
	Spacing float64     // Centre-to-centre cell distance d (must be > 0)
	Span    float64     // Horizontal span covered by the lattice
	Rings   int         // When positive, overrides the ring count derived from Span
	Shape   DomainShape // Retained region and raster order

	// Cells added around the boundary extents for Rectangle and Parallelogram
	GrowthBufferHorz int
	GrowthBufferVert int

	// Goroutines used for distance-to-boundary; values <= 1 run serially
	Workers int

	// Sub-parallelogram partitioning (SubParallelograms only)
	MaxPartitions     int // Upper bound on blocks (default: 1)
	MinPartitionCells int // Blocks smaller than this are not kept (default: 1)
}

// DefaultParams returns parameters for a unit-spacing lattice that keeps the
// region enclosed by the boundary.
func DefaultParams() Params {
	return Params{
		Spacing:           1.0,
		Span:              10.0,
		Shape:             Boundary,
		Workers:           1,
		MaxPartitions:     1,
		MinPartitionCells: 1,
	}
}

// MaxRings bounds the lattice size, about 50 million cells.
const MaxRings = 4096

// Validate checks that the parameters describe a constructible lattice.
func (p Params) Validate() error {
	if !(p.Spacing > 0) || math.IsInf(p.Spacing, 0) {
		return fmt.Errorf("%w: Spacing must be positive, got %f", ErrInvalidParams, p.Spacing)
	}
	if p.Rings < 0 {
		return fmt.Errorf("%w: Rings must be non-negative, got %d", ErrInvalidParams, p.Rings)
	}
	if p.Rings == 0 && (!(p.Span >= 0) || math.IsInf(p.Span, 0)) {
		return fmt.Errorf("%w: Span must be non-negative and finite, got %f", ErrInvalidParams, p.Span)
	}
	if p.Rings > MaxRings {
		return fmt.Errorf("%w: Rings must be at most %d, got %d", ErrInvalidParams, MaxRings, p.Rings)
	}
	if p.Rings == 0 {
		if rings := math.Ceil((p.Span / 2) / p.Spacing); rings > MaxRings {
			return fmt.Errorf("%w: Span/Spacing needs %.0f rings, at most %d allowed",
				ErrInvalidParams, rings, MaxRings)
		}
	}
	if !p.Shape.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDomainShape, int(p.Shape))
	}
	if p.GrowthBufferHorz < 0 || p.GrowthBufferVert < 0 {
		return fmt.Errorf("%w: growth buffers must be non-negative, got %d,%d",
			ErrInvalidParams, p.GrowthBufferHorz, p.GrowthBufferVert)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w: Workers must be non-negative, got %d", ErrInvalidParams, p.Workers)
	}
	if p.MaxPartitions < 0 || p.MinPartitionCells < 0 {
		return fmt.Errorf("%w: partition limits must be non-negative, got %d,%d",
			ErrInvalidParams, p.MaxPartitions, p.MinPartitionCells)
	}
	return nil
}

// MaxRing returns the number of rings built around the central cell,
// ceil((Span/2)/Spacing) unless Rings is set.
func (p Params) MaxRing() int {
	if p.Rings > 0 {
		return p.Rings
	}
	return int(math.Ceil((p.Span / 2) / p.Spacing))
}
