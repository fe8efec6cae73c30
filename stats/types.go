package stats

import "errors"

// Sentinel errors for the statistical validators.
var (
	// ErrInsufficientPool indicates the candidate pool holds fewer
	// impedances than the requested sample size.
	ErrInsufficientPool = errors.New("stats: candidate pool smaller than sample size")
	// ErrBadTrialSpec indicates a non-positive trial count or a sample
	// size below 2.
	ErrBadTrialSpec = errors.New("stats: trial count must be positive and sample size at least 2")
	// ErrDegenerateTable indicates a contingency row or column sums to zero.
	ErrDegenerateTable = errors.New("stats: contingency table has an empty row or column")
	// ErrBadTable indicates a malformed contingency table (empty, ragged,
	// negative counts, or fewer than two rows/columns).
	ErrBadTable = errors.New("stats: malformed contingency table")
)

// metalZCeiling bounds the MetalPool: every tabulated element with
// impedance below it counts as a "metal" for resampling purposes. The
// cutoff excludes exactly the high-impedance nonmetals and noble gases,
// leaving the framework's 35-element pool.
const metalZCeiling = 5.0

// PoolKind selects a built-in candidate pool for ClusterTest.
type PoolKind int

const (
	// MetalPool: all tabulated elements with impedance Z < 5.
	MetalPool PoolKind = iota
	// FullPool: every tabulated element.
	FullPool
)

// ClusterOptions configures the Monte Carlo clustering test.
type ClusterOptions struct {
	// Trials is the number of random draws. Default 100,000.
	Trials int
	// SampleSize is the subset size per draw, without replacement.
	// Default 7, the planetary-metal count.
	SampleSize int
	// Seed feeds the deterministic RNG; 0 selects the fixed default
	// stream. Re-running with another seed is a statistical re-run, not
	// error recovery.
	Seed int64
	// Workers splits trials into independently seeded parallel batches.
	// Values < 2 run single-threaded. The p-value for a given
	// (Seed, Workers) pair is exactly reproducible.
	Workers int
}

// DefaultClusterOptions returns the documented reference configuration:
// 100,000 trials of size 7, default stream, single-threaded.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{Trials: 100000, SampleSize: 7, Seed: 0, Workers: 1}
}

// ClusterResult is the outcome of one Monte Carlo clustering test.
type ClusterResult struct {
	// PValue is Hits/Trials: the empirical probability of drawing a subset
	// at least as tightly clustered as the observed one.
	PValue float64
	// Hits counts draws whose impedance range was ≤ Observed.
	Hits int
	// Trials echoes the executed trial count.
	Trials int
	// Observed is the reference range the draws were compared against.
	Observed float64
	// MeanRange is the average range over all draws.
	MeanRange float64
	// PoolSize and SampleSize echo the test geometry.
	PoolSize, SampleSize int
}

// ChiSquareResult is the outcome of a Pearson chi-square association test.
type ChiSquareResult struct {
	// Statistic is the Pearson χ² statistic.
	Statistic float64
	// DF is (rows−1)×(cols−1).
	DF int
	// PValue is the upper-tail probability of Statistic under the χ²
	// distribution with DF degrees of freedom.
	PValue float64
	// Counts is the observed contingency table (rows × cols).
	Counts [][]int
}
