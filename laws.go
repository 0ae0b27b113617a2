package algebra

import (
	"fmt"
	"strings"
)

// Law names an algebraic property of a PairFunc.
type Law string

const (
	LawCommutative Law = "Commutative" // f(a, b) == f(b, a)
	LawAssociative Law = "Associative" // f(a, f(b, c)) == f(f(a, b), c)
	LawIdempotent  Law = "Idempotent"  // f(f(a, a), f(a, a)) == f(a, a)
)

// LawViolation records one sample where a law failed.
type LawViolation[T any] struct {
	Law  Law
	Args []T // Sample arguments
	Got  T   // Left-hand side
	Want T   // Right-hand side
}

func (v LawViolation[T]) String() string {
	return fmt.Sprintf("%s law violated for %v: %v != %v", v.Law, v.Args, v.Got, v.Want)
}

// LawReport is the outcome of CheckLaws.
type LawReport[T any] struct {
	Checked    int // Samples evaluated (rejected inputs are not counted)
	Violations []LawViolation[T]
}

// OK reports whether no law was violated.
func (r LawReport[T]) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil when the report is OK, otherwise an error wrapping
// ErrLawViolation that names the first violation.
func (r LawReport[T]) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s (%d of %d samples)",
		ErrLawViolation, r.Violations[0], len(r.Violations), r.Checked)
}

// CheckLaws evaluates the given laws over every pair (and, for
// associativity, every triple) of samples. Reduce only gives an
// order-independent answer for functions that are commutative and
// associative.
//
// Inputs fn rejects with an error are skipped. Idempotence is checked on
// the image of fn, so gcd(-4, -4) == 4 still passes. Unknown laws are
// ignored; ParseLaws validates names.
func CheckLaws[T comparable](fn PairFunc[T], samples []T, laws ...Law) LawReport[T] {
	var report LawReport[T]

	for _, law := range laws {
		switch law {
		case LawCommutative:
			for _, a := range samples {
				for _, b := range samples {
					ab, err1 := fn(a, b)
					ba, err2 := fn(b, a)
					if err1 != nil || err2 != nil {
						continue
					}
					report.Checked++
					if ab != ba {
						report.Violations = append(report.Violations, LawViolation[T]{
							Law: law, Args: []T{a, b}, Got: ab, Want: ba,
						})
					}
				}
			}

		case LawAssociative:
			for _, a := range samples {
				for _, b := range samples {
					for _, c := range samples {
						left, ok := apply3(fn, a, b, c, false)
						if !ok {
							continue
						}
						right, ok := apply3(fn, a, b, c, true)
						if !ok {
							continue
						}
						report.Checked++
						if left != right {
							report.Violations = append(report.Violations, LawViolation[T]{
								Law: law, Args: []T{a, b, c}, Got: left, Want: right,
							})
						}
					}
				}
			}

		case LawIdempotent:
			for _, a := range samples {
				once, err := fn(a, a)
				if err != nil {
					continue
				}
				twice, err := fn(once, once)
				if err != nil {
					continue
				}
				report.Checked++
				if once != twice {
					report.Violations = append(report.Violations, LawViolation[T]{
						Law: law, Args: []T{a}, Got: twice, Want: once,
					})
				}
			}
		}
	}

	return report
}

// apply3 computes f(a, f(b, c)) or, with leftFirst, f(f(a, b), c).
func apply3[T any](fn PairFunc[T], a, b, c T, leftFirst bool) (T, bool) {
	var inner, outer T
	var err error
	if leftFirst {
		if inner, err = fn(a, b); err != nil {
			return outer, false
		}
		outer, err = fn(inner, c)
	} else {
		if inner, err = fn(b, c); err != nil {
			return outer, false
		}
		outer, err = fn(a, inner)
	}
	return outer, err == nil
}

// ParseLaws parses a comma-separated list such as "Commutative,Associative".
func ParseLaws(s string) ([]Law, error) {
	var laws []Law
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		law := Law(name)
		if !contains([]Law{LawCommutative, LawAssociative, LawIdempotent}, law) {
			return nil, invalid("unknown law %q", name)
		}
		laws = append(laws, law)
	}
	return laws, nil
}

// contains checks if slice contains v.
func contains[T comparable](slice []T, v T) bool {
	for _, item := range slice {
		if item == v {
			return true
		}
	}
	return false
}
