// Package algebra computes n-th roots and greatest common divisors.
//
// # Overview
//
// All functions are pure: they keep no state between calls and are safe
// for concurrent use. Invalid input is reported with an error wrapping
// ErrInvalidArgument; nothing panics.
//
// # Roots
//
// RootOfDegreeN solves x^n - value = 0 by Newton's method starting at x0 = 2:
//
//	x_{k+1} = ((n-1)·x_k + value / x_k^(n-1)) / n
//
// until two consecutive approximations differ by at most the accuracy
// (DefaultAccuracy = 1e-9):
//
//	root, err := algebra.RootOfDegreeN(2, 2) // 1.41421356...
//
// Two inputs short-circuit the iteration:
//   - |n| ≤ accuracy: +Inf
//   - |value| ≤ accuracy: 0
//
// The iteration is unbounded by default. Bound it for untrusted input:
//
//	cfg := algebra.DefaultRootConfig()
//	cfg.MaxIterations = 10_000
//	root, err := algebra.RootOfDegreeNWithConfig(value, n, cfg)
//	if errors.Is(err, algebra.ErrNoConvergence) {
//	    // ...
//	}
//
// # Greatest common divisor
//
// Two algorithms, each in four shapes:
//
//	Euclidean (modulo)       Binary (Stein)
//	GreatestCommonDivision   GreatestCommonDivisionBinary      (a, b)
//	...Timed                 ...BinaryTimed                    (a, b) + duration
//	...Of                    ...BinaryOf                       (values...)
//	...OfTimed               ...BinaryOfTimed                  (values...) + duration
//
// Results are non-negative. gcd(0, 0) is undefined, lists need at least two
// values, and the minimum int has no absolute value (ErrOverflow).
//
// The generic forms Euclid and Stein work on any signed integer type.
//
// # Composition
//
// The shapes above are built from three helpers that accept any PairFunc:
//
//	Reduce(fn, values...)         // result = fn(values[i], result), left to right
//	ElapsedList(fn, values...)    // Reduce + duration
//	ElapsedPair(fn, a, b)         // fn(a, b) + duration, through ElapsedValues
//
// Reduce gives an order-independent answer only for commutative and
// associative functions. CheckLaws verifies that on samples:
//
//	report := algebra.CheckLaws(algebra.Stein[int], samples,
//	    algebra.LawCommutative, algebra.LawAssociative)
//	if err := report.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Comparing algorithms
//
// CompareGCD times repeated folds of each algorithm and summarizes the
// latencies with CalculateStatistics. CompareRoot contrasts the Newton root
// with math.Pow.
//
//	comparisons, err := algebra.CompareGCD(ctx, values, algebra.DefaultConfig())
//	for _, c := range comparisons {
//	    fmt.Printf("%s: gcd=%d p50=%v\n", c.Algorithm, c.GCD, c.Stats.P50)
//	}
//
// # Testing
//
// AssertGCDAgreement, AssertRootInverse and AssertLaws check the same
// properties from a test:
//
//	func TestMyValues(t *testing.T) {
//	    algebra.AssertGCDAgreement(t, 1071, 462)
//	    algebra.AssertRootInverse(t, 27, 3, 1e-6)
//	}
//
// # See Also
//
//   - examples/compare - prints roots and gcds next to math.Pow and timings
package algebra
