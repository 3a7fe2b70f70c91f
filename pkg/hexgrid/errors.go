package hexgrid

import "errors"

var (
	// ErrInvalidBoundary reports a boundary whose cells do not form a single
	// contiguous set, or a boundary with no usable points.
	ErrInvalidBoundary = errors.New("hexgrid: invalid boundary")

	// ErrUnknownDomainShape reports an unrecognised DomainShape value.
	ErrUnknownDomainShape = errors.New("hexgrid: unknown domain shape")

	// ErrInvalidState reports a pipeline stage invoked out of order.
	ErrInvalidState = errors.New("hexgrid: invalid state")

	// ErrSizeMismatch reports caller-supplied coordinate arrays of unequal length.
	ErrSizeMismatch = errors.New("hexgrid: size mismatch")

	// ErrInvalidParams reports lattice parameters that fail validation.
	ErrInvalidParams = errors.New("hexgrid: invalid parameters")

	// ErrDomainOutsideLattice reports a rectangular or parallelogram domain
	// that is not entirely covered by the lattice. Increase Span.
	ErrDomainOutsideLattice = errors.New("hexgrid: domain extends beyond lattice")
)
