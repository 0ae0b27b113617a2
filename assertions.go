package algebra

import (
	"math"
	"testing"
)

// AssertGCDAgreement verifies both gcd algorithms agree on values, return
// a non-negative result, and that the result divides every value.
//
// Mathematical property:
//
//	g = gcd(v_1..v_k) ≥ 0, and v_i mod g = 0 for all i
func AssertGCDAgreement(t *testing.T, values ...int) {
	t.Helper()

	euclid, err := GreatestCommonDivisionOf(values...)
	if err != nil {
		t.Fatalf("Euclid failed for %v: %v", values, err)
	}
	binary, err := GreatestCommonDivisionBinaryOf(values...)
	if err != nil {
		t.Fatalf("Binary failed for %v: %v", values, err)
	}

	if euclid != binary {
		t.Errorf("Algorithms disagree for %v: euclid=%d, binary=%d", values, euclid, binary)
	}
	if euclid < 0 {
		t.Errorf("Negative gcd for %v: %d", values, euclid)
	}
	if euclid == 0 {
		return
	}
	for _, v := range values {
		if v%euclid != 0 {
			t.Errorf("gcd %d does not divide %d (values %v)", euclid, v, values)
		}
	}
}

// AssertRootInverse verifies that raising the computed root back to the
// n-th power recovers value within tolerance.
//
// Mathematical property:
//
//	|RootOfDegreeN(v, n)^n - v| ≤ tolerance
func AssertRootInverse(t *testing.T, value, n, tolerance float64) {
	t.Helper()

	root, err := RootOfDegreeN(value, n)
	if err != nil {
		t.Fatalf("RootOfDegreeN(%g, %g) failed: %v", value, n, err)
	}

	back := math.Pow(root, n)
	if diff := math.Abs(back - value); diff > tolerance {
		t.Errorf("Root does not invert: (%g)^%g = %g, want %g (diff %g > %g)",
			root, n, back, value, diff, tolerance)
	}
}

// AssertLaws verifies fn satisfies laws over samples.
func AssertLaws[T comparable](t *testing.T, fn PairFunc[T], samples []T, laws ...Law) {
	t.Helper()

	report := CheckLaws(fn, samples, laws...)
	if report.Checked == 0 {
		t.Fatalf("No samples checked for %v", laws)
	}
	for _, v := range report.Violations {
		t.Errorf("%s", v)
	}

	t.Logf("✓ %d samples checked for %v", report.Checked, laws)
}
