package matrixgame

import (
	"github.com/pkg/errors"
)

// Sentinel errors. Returned errors wrap one of these with context,
// so callers should match with errors.Is.
var (
	// ErrBadShape is returned for a payoff matrix with no rows, no columns
	// or rows of differing lengths.
	ErrBadShape = errors.New("matrixgame: invalid matrix shape")
	// ErrNaNInf is returned when a payoff entry is NaN or ±Inf.
	ErrNaNInf = errors.New("matrixgame: NaN or Inf payoff")
	// ErrInvalidParam is returned for non-positive learning rate,
	// iteration count or log interval.
	ErrInvalidParam = errors.New("matrixgame: invalid parameter")
	// ErrNumericRange is returned when an update overflows or underflows
	// so that a strategy can no longer be normalized.
	ErrNumericRange = errors.New("matrixgame: numeric range exceeded")
	// ErrDimensionMismatch is returned when a strategy does not match the
	// number of actions available to its player.
	ErrDimensionMismatch = errors.New("matrixgame: dimension mismatch")
)
