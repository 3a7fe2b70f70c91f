package hexgrid

import "fmt"

// State is a Grid's position in the build pipeline. Transitions only move
// forward: Built, BoundaryFitted, Pruned, Compacted.
type State int

const (
	Built State = iota
	BoundaryFitted
	Pruned
	Compacted
)

func (s State) String() string {
	switch s {
	case Built:
		return "Built"
	case BoundaryFitted:
		return "BoundaryFitted"
	case Pruned:
		return "Pruned"
	case Compacted:
		return "Compacted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (g *Grid) requireState(op string, allowed ...State) error {
	for _, s := range allowed {
		if g.state == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %s not allowed in state %s", ErrInvalidState, op, g.state)
}
