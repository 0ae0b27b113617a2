package algebra

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// Euclid returns the greatest common divisor of a and b by repeated
// remainders. The result is non-negative.
func Euclid[T constraints.Signed](a, b T) (T, error) {
	a, b, err := operands(a, b)
	if err != nil {
		return 0, err
	}

	for a != 0 && b != 0 {
		if a > b {
			a %= b
		} else {
			b %= a
		}
	}
	if a == 0 {
		return b, nil
	}
	return a, nil
}

// Stein returns the greatest common divisor of a and b using only
// comparisons, subtraction and shifts. The result is non-negative.
//
// multiplier collects the factors of two shared by both operands.
func Stein[T constraints.Signed](a, b T) (T, error) {
	a, b, err := operands(a, b)
	if err != nil {
		return 0, err
	}

	multiplier := T(1)
	for {
		switch {
		case a == 0 || b == 0:
			return (a + b) * multiplier, nil
		case a == b:
			return a * multiplier, nil
		case a == 1 || b == 1:
			return multiplier, nil
		case a&1 == 0 && b&1 == 0:
			multiplier <<= 1
			a >>= 1
			b >>= 1
		case a&1 == 0:
			a >>= 1
		case b&1 == 0:
			b >>= 1
		case b > a:
			b = (b - a) >> 1
		default:
			a = (a - b) >> 1
		}
	}
}

// operands rejects (0, 0) and returns |a|, |b|.
func operands[T constraints.Signed](a, b T) (T, T, error) {
	if a == 0 && b == 0 {
		return 0, 0, invalid("greatest common divisor of (0, 0) is undefined")
	}
	absA, ok := abs(a)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrOverflow, a)
	}
	absB, ok := abs(b)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrOverflow, b)
	}
	return absA, absB, nil
}

// abs reports false for the minimum value of T, whose negation wraps.
func abs[T constraints.Signed](v T) (T, bool) {
	if v >= 0 {
		return v, true
	}
	v = -v
	return v, v >= 0
}

// GreatestCommonDivision returns gcd(a, b) by the Euclidean algorithm.
func GreatestCommonDivision(a, b int) (int, error) {
	return Euclid(a, b)
}

// GreatestCommonDivisionTimed is GreatestCommonDivision plus the time the
// algorithm took.
func GreatestCommonDivisionTimed(a, b int) (int, time.Duration, error) {
	return ElapsedPair(Euclid[int], a, b)
}

// GreatestCommonDivisionOf folds the Euclidean algorithm over two or more
// values.
func GreatestCommonDivisionOf(values ...int) (int, error) {
	return Reduce(Euclid[int], values...)
}

// GreatestCommonDivisionOfTimed is GreatestCommonDivisionOf plus the time
// the fold took.
func GreatestCommonDivisionOfTimed(values ...int) (int, time.Duration, error) {
	return ElapsedList(Euclid[int], values...)
}

// GreatestCommonDivisionBinary returns gcd(a, b) by Stein's algorithm.
func GreatestCommonDivisionBinary(a, b int) (int, error) {
	return Stein(a, b)
}

// GreatestCommonDivisionBinaryTimed is GreatestCommonDivisionBinary plus the
// time the algorithm took.
func GreatestCommonDivisionBinaryTimed(a, b int) (int, time.Duration, error) {
	return ElapsedPair(Stein[int], a, b)
}

// GreatestCommonDivisionBinaryOf folds Stein's algorithm over two or more
// values.
func GreatestCommonDivisionBinaryOf(values ...int) (int, error) {
	return Reduce(Stein[int], values...)
}

// GreatestCommonDivisionBinaryOfTimed is GreatestCommonDivisionBinaryOf plus
// the time the fold took.
func GreatestCommonDivisionBinaryOfTimed(values ...int) (int, time.Duration, error) {
	return ElapsedList(Stein[int], values...)
}
