package algebra

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_SimpleOperation verifies the runner counts calls.
func TestRun_SimpleOperation(t *testing.T) {
	var counter int

	op := func(ctx context.Context) error {
		counter++
		return nil
	}

	cfg := DefaultConfig()
	cfg.Iterations = 50
	cfg.Warmup = 5

	result, err := Run(context.Background(), "count", op, cfg)
	require.NoError(t, err)

	assert.Equal(t, "count", result.Name)
	assert.Equal(t, 55, counter)
	assert.Equal(t, int64(50), result.Operations)
	assert.Equal(t, int64(0), result.Errors)
	assert.Len(t, result.Latencies, 50)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRun_CountsErrors(t *testing.T) {
	var calls int
	op := func(ctx context.Context) error {
		calls++
		if calls%2 == 0 {
			return errors.New("even")
		}
		return nil
	}

	result, err := Run(context.Background(), "flaky", op, Config{Iterations: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Operations)
	assert.Equal(t, int64(5), result.Errors)
	assert.Len(t, result.Latencies, 5)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	op := func(ctx context.Context) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	}

	result, err := Run(ctx, "cancel", op, Config{Iterations: 100})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(3), result.Operations)
}

func TestRun_DurationBudget(t *testing.T) {
	op := func(ctx context.Context) error {
		time.Sleep(time.Millisecond)
		return nil
	}

	cfg := Config{Iterations: 10_000, Duration: 20 * time.Millisecond}
	result, err := Run(context.Background(), "budget", op, cfg)
	require.NoError(t, err)

	assert.Less(t, result.Operations, int64(10_000))
	assert.Greater(t, result.Operations, int64(0))
}

func TestRun_InvalidConfig(t *testing.T) {
	op := func(ctx context.Context) error { return nil }

	_, err := Run(context.Background(), "none", op, Config{Iterations: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Run(context.Background(), "none", op, Config{Iterations: 1, Warmup: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestCalculateStatistics verifies percentile calculations.
func TestCalculateStatistics(t *testing.T) {
	result := Result{
		Operations: 5,
		Latencies: []time.Duration{
			500 * time.Microsecond,
			100 * time.Microsecond,
			300 * time.Microsecond,
			200 * time.Microsecond,
			400 * time.Microsecond,
		},
	}

	stats := CalculateStatistics(result)

	// P50 should be 300µs (middle value)
	assert.Equal(t, 300*time.Microsecond, stats.P50)
	assert.Equal(t, 300*time.Microsecond, stats.Mean)
	assert.Equal(t, 100*time.Microsecond, stats.Min)
	assert.Equal(t, 500*time.Microsecond, stats.Max)
	assert.Equal(t, 500*time.Microsecond, stats.P99)

	// Population deviation of {100..500}µs is √20000 µs.
	assert.InDelta(t, math.Sqrt(20000)*1000, float64(stats.Stddev), 1)

	assert.Equal(t, Statistics{}, CalculateStatistics(Result{}))
}

// TestCalculateStatistics_Percentiles checks nearest-rank-below percentiles.
func TestCalculateStatistics_Percentiles(t *testing.T) {
	var result Result
	for i := 20; i >= 1; i-- {
		result.Latencies = append(result.Latencies, time.Duration(i)*time.Millisecond)
	}

	stats := CalculateStatistics(result)

	assert.Equal(t, time.Millisecond, stats.Min)
	assert.Equal(t, 20*time.Millisecond, stats.Max)
	assert.Equal(t, 11*time.Millisecond, stats.P50)
	assert.Equal(t, 20*time.Millisecond, stats.P95)
	assert.Equal(t, 20*time.Millisecond, stats.P99)
	assert.Equal(t, 10500*time.Microsecond, stats.Mean)

	// Input order is left alone.
	assert.Equal(t, 20*time.Millisecond, result.Latencies[0])
}

func TestCompareGCD_Agree(t *testing.T) {
	cfg := Config{Iterations: 20, Warmup: 2}

	comparisons, err := CompareGCD(context.Background(), []int{12, -18, 24}, cfg)
	require.NoError(t, err)
	require.Len(t, comparisons, 2)

	for _, c := range comparisons {
		assert.Equal(t, 6, c.GCD, c.Algorithm)
		assert.Equal(t, int64(20), c.Result.Operations, c.Algorithm)
		assert.Equal(t, c.Algorithm, c.Result.Name)
		assert.LessOrEqual(t, c.Stats.Min, c.Stats.Max)
	}
	assert.Equal(t, "euclid", comparisons[0].Algorithm)
	assert.Equal(t, "binary", comparisons[1].Algorithm)
}

func TestCompareGCD_Mismatch(t *testing.T) {
	one := GCDAlgorithm{
		Name: "one",
		Fn:   func(a, b int) (int, error) { return 1, nil },
	}

	_, err := CompareGCD(context.Background(), []int{4, 8}, Config{Iterations: 1},
		Algorithms()[0], one)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestCompareGCD_InvalidInput(t *testing.T) {
	_, err := CompareGCD(context.Background(), []int{4}, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCompareRoot(t *testing.T) {
	cmp, err := CompareRoot(2, 2, DefaultRootConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, cmp.Newton, 1e-9)
	assert.Less(t, cmp.AbsError, 1e-9)

	cmp, err = CompareRoot(400, 56, DefaultRootConfig())
	require.NoError(t, err)
	assert.Less(t, cmp.AbsError, 1e-8)

	_, err = CompareRoot(-4, 2, DefaultRootConfig())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
