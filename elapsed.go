package algebra

import "time"

// ListFunc computes a result from a list of values.
type ListFunc[T any] func(values []T) (T, error)

// MeasureElapsed runs fn and returns its result together with the wall
// clock time it took. The timer starts immediately before fn and stops
// immediately after, on the monotonic clock.
func MeasureElapsed[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)

	return result, elapsed, err
}

// ElapsedValues times fn(values). Only fn itself is measured.
func ElapsedValues[T any](fn ListFunc[T], values []T) (T, time.Duration, error) {
	return MeasureElapsed(func() (T, error) {
		return fn(values)
	})
}

// ElapsedList times Reduce(fn, values...).
func ElapsedList[T any](fn PairFunc[T], values ...T) (T, time.Duration, error) {
	return ElapsedValues[T](func(values []T) (T, error) {
		return Reduce(fn, values...)
	}, values)
}

// ElapsedPair times fn(a, b). The pair is passed as a two-element list so
// pair and list timings share ElapsedValues.
func ElapsedPair[T any](fn PairFunc[T], a, b T) (T, time.Duration, error) {
	return ElapsedValues[T](func(values []T) (T, error) {
		return fn(values[0], values[1])
	}, []T{a, b})
}
