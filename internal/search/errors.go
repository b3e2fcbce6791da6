package search

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// ErrInvalidInput is returned by Start when the grid lacks a start or a goal.
var ErrInvalidInput = errors.New("search: start or goal not set")

// ErrUnknownKind is returned by New for a Kind outside the fixed set.
var ErrUnknownKind = errors.New("search: unknown algorithm kind")

// BrokenChainError is the panic value raised when the predecessor map cannot
// lead from the goal back to the start. It means the algorithm's bookkeeping
// is wrong; it is never a runtime outcome.
type BrokenChainError struct {
	At     grid.Coord
	Reason string
}

func (e *BrokenChainError) Error() string {
	return fmt.Sprintf("search: broken predecessor chain at %v: %s", e.At, e.Reason)
}
