package algebra

import "fmt"

// PairFunc combines two values. Functions folded by Reduce should be
// commutative and associative (see CheckLaws).
type PairFunc[T any] func(a, b T) (T, error)

// Reduce folds fn over values from left to right:
//
//	result = values[0]
//	result = fn(values[i], result)  for i = 1..len-1
//
// The new value is the first argument and the running result the second.
// At least two values are required. The first error stops the fold.
func Reduce[T any](fn PairFunc[T], values ...T) (T, error) {
	var zero T
	if len(values) < 2 {
		return zero, invalid("need at least 2 values, got %d", len(values))
	}

	result := values[0]
	for i := 1; i < len(values); i++ {
		next, err := fn(values[i], result)
		if err != nil {
			return zero, fmt.Errorf("value %d: %w", i, err)
		}
		result = next
	}
	return result, nil
}
