package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an input has no defined result:
	// a negative root value, an accuracy outside [0, 1), the pair (0, 0),
	// or fewer than two values to fold.
	ErrInvalidArgument = errors.New("algebra: invalid argument")

	// ErrOverflow is returned when an operand has no representable absolute
	// value (the minimum of a signed integer type).
	ErrOverflow = fmt.Errorf("%w: absolute value overflows", ErrInvalidArgument)

	// ErrNoConvergence is returned by a bounded root iteration that used up
	// its iterations.
	ErrNoConvergence = errors.New("algebra: iteration did not converge")

	// ErrLawViolation is returned by LawReport.Err.
	ErrLawViolation = errors.New("algebra: law violated")

	// ErrMismatch is returned when algorithms disagree on a result.
	ErrMismatch = errors.New("algebra: algorithms disagree")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
