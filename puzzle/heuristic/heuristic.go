package heuristic

import (
	"errors"
	"fmt"

	"github.com/tilelabs/slider/puzzle/state"
)

// ErrUnknownKind is returned when a Kind does not name one of the three
// estimators.
var ErrUnknownKind = errors.New("unknown heuristic")

// Kind names one of the fixed set of estimators.
type Kind string

const (
	// Manhattan is the per-tile grid-distance estimator.
	Manhattan Kind = "manhattan"
	// LinearConflict is Manhattan plus linear-conflict penalties.
	LinearConflict Kind = "linear_conflict"
	// Enhanced is LinearConflict plus corner and edge penalties.
	Enhanced Kind = "enhanced"
)

// Estimator scores a board: a non-negative estimate of the moves remaining to
// reach the solved configuration. Implementations are pure functions of the
// board.
type Estimator interface {
	Estimate(s *state.State) int
	Kind() Kind
}

// New returns the estimator named by kind.
func New(kind Kind) (Estimator, error) {
	switch kind {
	case Manhattan:
		return manhattan{}, nil
	case LinearConflict:
		return linearConflict{}, nil
	case Enhanced:
		return enhanced{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Parse converts a configuration string into a Kind.
func Parse(name string) (Kind, error) {
	kind := Kind(name)
	if _, err := New(kind); err != nil {
		return "", err
	}
	return kind, nil
}

// Kinds lists the available estimators in increasing order of informedness.
func Kinds() []Kind {
	return []Kind{Manhattan, LinearConflict, Enhanced}
}
