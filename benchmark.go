package algebra

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"
)

// Operation represents a benchmarked computation.
type Operation func(ctx context.Context) error

// Result contains measurements from one benchmark run.
type Result struct {
	Name       string          // Operation name
	Operations int64           // Successful calls
	Errors     int64           // Failed calls
	Duration   time.Duration   // Total measured time
	Latencies  []time.Duration // Individual call latencies (successful calls only)
}

// Statistics contains latency summary data.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	Min    time.Duration
	Max    time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// Config controls benchmark execution.
type Config struct {
	Iterations int           // Measured calls
	Warmup     int           // Discarded calls before measurement
	Duration   time.Duration // Optional time budget for the measured calls (0 = none)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Iterations: 1000,
		Warmup:     100,
		Duration:   0,
	}
}

// Run calls op cfg.Iterations times and records each latency.
//
// Calls run one after another. When ctx is cancelled the partial result
// is returned with the context error.
func Run(ctx context.Context, name string, op Operation, cfg Config) (Result, error) {
	if cfg.Iterations <= 0 {
		return Result{}, invalid("iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.Warmup < 0 {
		return Result{}, invalid("warmup must not be negative, got %d", cfg.Warmup)
	}

	// Warmup phase
	for i := 0; i < cfg.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Result{Name: name}, fmt.Errorf("%s: warmup: %w", name, err)
		}
		_ = op(ctx)
	}

	// Measurement phase
	result := Result{
		Name:      name,
		Latencies: make([]time.Duration, 0, cfg.Iterations),
	}
	start := time.Now()

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("%s: after %d calls: %w", name, i, err)
		}
		if cfg.Duration > 0 && time.Since(start) >= cfg.Duration {
			break
		}

		_, latency, err := MeasureElapsed(func() (struct{}, error) {
			return struct{}{}, op(ctx)
		})
		if err != nil {
			result.Errors++
			continue
		}
		result.Operations++
		result.Latencies = append(result.Latencies, latency)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// CalculateStatistics summarizes the latencies of a run. Deviation is the
// population deviation; percentiles use the nearest rank below.
func CalculateStatistics(result Result) Statistics {
	n := len(result.Latencies)
	if n == 0 {
		return Statistics{}
	}

	sorted := slices.Clone(result.Latencies)
	slices.Sort(sorted)

	var total time.Duration
	for _, lat := range sorted {
		total += lat
	}
	mean := total / time.Duration(n)

	var squares float64
	for _, lat := range sorted {
		d := (lat - mean).Seconds()
		squares += d * d
	}
	deviation := math.Sqrt(squares/float64(n)) * float64(time.Second)

	return Statistics{
		Mean:   mean,
		Stddev: time.Duration(deviation),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P50:    percentile(sorted, 50),
		P95:    percentile(sorted, 95),
		P99:    percentile(sorted, 99),
	}
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p int) time.Duration {
	return sorted[len(sorted)*p/100]
}

// GCDAlgorithm names a pairwise gcd implementation.
type GCDAlgorithm struct {
	Name string
	Fn   PairFunc[int]
}

// Algorithms returns the built-in gcd algorithms.
func Algorithms() []GCDAlgorithm {
	return []GCDAlgorithm{
		{Name: "euclid", Fn: Euclid[int]},
		{Name: "binary", Fn: Stein[int]},
	}
}

// Comparison is one algorithm's outcome in CompareGCD.
type Comparison struct {
	Algorithm string
	GCD       int
	Result    Result
	Stats     Statistics
}

// CompareGCD folds each algorithm over values cfg.Iterations times and
// reports the latency of each fold. With no algorithms given it compares
// Algorithms(). All algorithms must agree on the gcd.
func CompareGCD(ctx context.Context, values []int, cfg Config, algorithms ...GCDAlgorithm) ([]Comparison, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms()
	}

	comparisons := make([]Comparison, 0, len(algorithms))
	for _, alg := range algorithms {
		gcd, err := Reduce(alg.Fn, values...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg.Name, err)
		}

		fn := alg.Fn
		result, err := Run(ctx, alg.Name, func(context.Context) error {
			_, err := Reduce(fn, values...)
			return err
		}, cfg)
		if err != nil {
			return nil, err
		}

		comparisons = append(comparisons, Comparison{
			Algorithm: alg.Name,
			GCD:       gcd,
			Result:    result,
			Stats:     CalculateStatistics(result),
		})
	}

	for _, c := range comparisons[1:] {
		if c.GCD != comparisons[0].GCD {
			return comparisons, fmt.Errorf("%w: %s=%d, %s=%d",
				ErrMismatch, comparisons[0].Algorithm, comparisons[0].GCD, c.Algorithm, c.GCD)
		}
	}

	return comparisons, nil
}

// RootComparison contrasts the Newton root with math.Pow.
type RootComparison struct {
	Value    float64
	N        float64
	Newton   float64 // RootOfDegreeNWithConfig(Value, N)
	Pow      float64 // math.Pow(Value, 1/N)
	AbsError float64 // |Newton - Pow|
}

// CompareRoot computes value^(1/n) both ways.
func CompareRoot(value, n float64, cfg RootConfig) (RootComparison, error) {
	newton, err := RootOfDegreeNWithConfig(value, n, cfg)
	if err != nil {
		return RootComparison{}, err
	}

	pow := math.Pow(value, 1/n)
	return RootComparison{
		Value:    value,
		N:        n,
		Newton:   newton,
		Pow:      pow,
		AbsError: math.Abs(newton - pow),
	}, nil
}
