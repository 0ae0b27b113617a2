package algebra

import (
	"fmt"
	"math"
)

// DefaultAccuracy is the convergence threshold used by RootOfDegreeN.
const DefaultAccuracy = 1e-9

// initialApproximation is x0 for every Newton run.
const initialApproximation = 2.0

// RootConfig controls the Newton iteration.
type RootConfig struct {
	Accuracy      float64 // Stop when |x_{k+1} - x_k| <= Accuracy; must be in [0, 1)
	MaxIterations int     // Iteration bound (0 = unbounded)
}

// DefaultRootConfig returns accuracy 1e-9 and no iteration bound.
func DefaultRootConfig() RootConfig {
	return RootConfig{
		Accuracy:      DefaultAccuracy,
		MaxIterations: 0,
	}
}

// RootOfDegreeN returns value^(1/n) computed by Newton's method with
// DefaultAccuracy.
func RootOfDegreeN(value, n float64) (float64, error) {
	return RootOfDegreeNWithConfig(value, n, DefaultRootConfig())
}

// RootOfDegreeNWithAccuracy is RootOfDegreeN with a caller-chosen accuracy.
func RootOfDegreeNWithAccuracy(value, n, accuracy float64) (float64, error) {
	cfg := DefaultRootConfig()
	cfg.Accuracy = accuracy
	return RootOfDegreeNWithConfig(value, n, cfg)
}

// RootOfDegreeNWithConfig returns value^(1/n).
//
// Edge cases, after validation:
//   - |n| <= accuracy: +Inf (a root of degree ~0)
//   - |value| <= accuracy: exactly 0
//
// Otherwise it solves x^n - value = 0 starting from x0 = 2:
//
//	x_{k+1} = ((n-1)·x_k + value / x_k^(n-1)) / n
//
// The update runs at least once and stops when two consecutive
// approximations differ by at most the accuracy. With MaxIterations == 0
// there is no bound, and some (value, n, accuracy) combinations may never
// converge; set MaxIterations when inputs are untrusted.
//
// Negative degrees usually diverge from x0 = 2. Unbounded, the iteration
// then ends on a non-finite approximation (NaN or ±Inf) which is returned
// without an error. With MaxIterations > 0 a non-finite approximation is
// reported as ErrNoConvergence.
func RootOfDegreeNWithConfig(value, n float64, cfg RootConfig) (float64, error) {
	var x float64
	err := iterateRoot(value, n, cfg, func(next float64) { x = next })
	if err != nil {
		return 0, err
	}
	return x, nil
}

// RootTrajectory returns every approximation x_1..x_k the iteration
// produced, the last one being the result. Edge cases yield a single
// element. Bound the iteration when inputs are untrusted.
func RootTrajectory(value, n float64, cfg RootConfig) ([]float64, error) {
	var trajectory []float64
	err := iterateRoot(value, n, cfg, func(next float64) {
		trajectory = append(trajectory, next)
	})
	if err != nil {
		return nil, err
	}
	return trajectory, nil
}

// iterateRoot validates the input and feeds each approximation to record.
func iterateRoot(value, n float64, cfg RootConfig, record func(float64)) error {
	if err := validateRoot(value, n, cfg); err != nil {
		return err
	}

	if math.Abs(n) <= cfg.Accuracy {
		record(math.Inf(1))
		return nil
	}
	if math.Abs(value) <= cfg.Accuracy {
		record(0)
		return nil
	}

	current := initialApproximation
	for i := 1; ; i++ {
		previous := current
		current = ((n-1)*previous + value/math.Pow(previous, n-1)) / n
		record(current)

		if cfg.MaxIterations > 0 && (math.IsNaN(current) || math.IsInf(current, 0)) {
			return fmt.Errorf("%w: root of degree %g of %g diverged to %g after %d iterations",
				ErrNoConvergence, n, value, current, i)
		}

		// A NaN difference ends the loop, as in the unguarded comparison.
		if !(math.Abs(current-previous) > cfg.Accuracy) {
			return nil
		}
		if cfg.MaxIterations > 0 && i >= cfg.MaxIterations {
			return fmt.Errorf("%w: root of degree %g of %g after %d iterations (last %g)",
				ErrNoConvergence, n, value, i, current)
		}
	}
}

func validateRoot(value, n float64, cfg RootConfig) error {
	switch {
	case math.IsNaN(cfg.Accuracy) || cfg.Accuracy < 0 || cfg.Accuracy >= 1:
		return invalid("accuracy %g outside [0, 1)", cfg.Accuracy)
	case math.IsNaN(value) || value < 0:
		return invalid("value %g must be non-negative", value)
	case math.IsNaN(n):
		return invalid("degree is NaN")
	case cfg.MaxIterations < 0:
		return invalid("max iterations %d is negative", cfg.MaxIterations)
	}
	return nil
}
