package stats

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/athanor-lab/athanor/element"
	"github.com/athanor-lab/athanor/impedance"
)

// BuildPool computes the impedance pool for one of the built-in kinds,
// in the table's stable atomic-number order.
//
// Complexity: O(n).
func BuildPool(tbl *element.Table, kind PoolKind) ([]float64, error) {
	var (
		recs = tbl.Records()
		out  = make([]float64, 0, len(recs))
		rec  element.Record
	)
	for _, rec = range recs {
		res, err := impedance.Compute(rec)
		if err != nil {
			return nil, err
		}
		if kind == MetalPool && res.Z >= metalZCeiling {
			continue
		}
		out = append(out, res.Z)
	}

	return out, nil
}

// PoolZ computes the impedance pool for an explicit symbol list, in input
// order. Unknown symbols surface element.ErrUnknownElement immediately.
//
// Complexity: O(len(symbols)).
func PoolZ(tbl *element.Table, symbols []string) ([]float64, error) {
	out := make([]float64, len(symbols))

	var (
		i   int
		rec element.Record
		err error
	)
	for i = range symbols {
		rec, err = tbl.Lookup(symbols[i])
		if err != nil {
			return nil, err
		}
		var res impedance.Result
		res, err = impedance.Compute(rec)
		if err != nil {
			return nil, err
		}
		out[i] = res.Z
	}

	return out, nil
}

// PlanetaryRange returns the observed impedance range (max−min) of the
// seven planetary metals: the reference statistic of the clustering test
// (≈0.465 with the built-in table).
//
// Complexity: O(1) — the metal set is fixed.
func PlanetaryRange(tbl *element.Table) (float64, error) {
	var (
		lo, hi float64
		first  = true
		pm     element.PlanetaryMetal
	)
	for _, pm = range tbl.PlanetaryMetals() {
		rec, err := tbl.Lookup(pm.Symbol)
		if err != nil {
			return 0, err
		}
		res, err := impedance.Compute(rec)
		if err != nil {
			return 0, err
		}
		if first || res.Z < lo {
			lo = res.Z
		}
		if first || res.Z > hi {
			hi = res.Z
		}
		first = false
	}

	return hi - lo, nil
}

// ClusterTest runs the Monte Carlo clustering test: opts.Trials uniform
// draws of opts.SampleSize impedances from pool, without replacement,
// counting draws whose range (max−min) is ≤ observed.
//
// Contract:
//   - len(pool) ≥ opts.SampleSize, else ErrInsufficientPool.
//   - opts.Trials > 0 and opts.SampleSize ≥ 2, else ErrBadTrialSpec.
//   - Deterministic for a fixed (Seed, Workers) pair; across seeds the
//     p-value is statistically stable, not bit-identical.
//
// Concurrency: with Workers > 1 the trials split into near-equal batches,
// each on an independently derived SplitMix64 stream. Batch tallies are
// combined by summation, so scheduling order cannot affect the result.
//
// Complexity: O(Trials · SampleSize) time, O(len(pool)) space per worker.
func ClusterTest(pool []float64, observed float64, opts ClusterOptions) (ClusterResult, error) {
	if opts.Trials <= 0 || opts.SampleSize < 2 {
		return ClusterResult{}, ErrBadTrialSpec
	}
	if len(pool) < opts.SampleSize {
		return ClusterResult{}, ErrInsufficientPool
	}

	var workers int
	workers = opts.Workers
	if workers < 2 {
		workers = 1
	}
	if workers > opts.Trials {
		workers = opts.Trials
	}

	var (
		hits     = make([]int, workers)     // per-batch hit tallies
		rangeSum = make([]float64, workers) // per-batch range sums
		g        errgroup.Group
		w        int
	)
	for w = 0; w < workers; w++ {
		batch := w
		// Spread the remainder over the first Trials%workers batches.
		trials := opts.Trials / workers
		if batch < opts.Trials%workers {
			trials++
		}
		g.Go(func() error {
			rng := rngForBatch(opts.Seed, uint64(batch))
			hits[batch], rangeSum[batch] = runBatch(rng, pool, observed, trials, opts.SampleSize)

			return nil
		})
	}
	// Workers never fail; Wait only synchronizes.
	_ = g.Wait()

	var (
		totalHits int
		totalSum  float64
	)
	for w = 0; w < workers; w++ {
		totalHits += hits[w]
		totalSum += rangeSum[w]
	}

	return ClusterResult{
		PValue:     float64(totalHits) / float64(opts.Trials),
		Hits:       totalHits,
		Trials:     opts.Trials,
		Observed:   observed,
		MeanRange:  totalSum / float64(opts.Trials),
		PoolSize:   len(pool),
		SampleSize: opts.SampleSize,
	}, nil
}

// runBatch executes trials draws on one RNG stream and returns the hit
// count and the sum of draw ranges.
//
// Sampling: a partial Fisher–Yates pass over an index permutation. The
// permutation is not reset between trials; a partial shuffle of an
// arbitrary permutation still selects uniformly without replacement.
//
// Complexity: O(trials · k) time, O(len(pool)) space.
func runBatch(rng *rand.Rand, pool []float64, observed float64, trials, k int) (int, float64) {
	var (
		n   = len(pool)
		idx = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		idx[i] = i
	}

	var (
		hits    int
		sum     float64
		t, j    int
		lo, hi  float64
		z, span float64
	)
	for t = 0; t < trials; t++ {
		for i = 0; i < k; i++ {
			j = i + rng.Intn(n-i)
			idx[i], idx[j] = idx[j], idx[i]
			z = pool[idx[i]]
			if i == 0 || z < lo {
				lo = z
			}
			if i == 0 || z > hi {
				hi = z
			}
		}
		span = hi - lo
		sum += span
		if span <= observed {
			hits++
		}
	}

	return hits, sum
}
