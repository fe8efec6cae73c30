// Package stats implements the framework's two statistical validation
// procedures over the element table.
//
// What:
//
//   - ClusterTest — Monte Carlo resampling: draw a fixed-size subset
//     (default 7, without replacement) from a candidate impedance pool
//     N times (default 100,000), compute the range max−min per draw, and
//     report the empirical p-value: the fraction of draws whose range is
//     at most the observed planetary-metals range.
//   - CategoryBlockTest — Pearson chi-square goodness-of-fit over the
//     (impedance Category) × (orbital Block) contingency table of the full
//     element table, with the p-value taken from the χ² distribution at
//     (rows−1)×(cols−1) degrees of freedom.
//
// Determinism:
//
//   - All randomness flows from a caller-supplied seed (seed==0 selects a
//     fixed default stream). Same seed and worker count ⇒ identical
//     p-value, bit for bit.
//   - With Workers > 1 the trials split into per-worker batches, each on
//     an independently derived SplitMix64 stream; hit counts combine by
//     summation, so execution order never affects the result.
//
// Pools:
//
//   - MetalPool: the 35 tabulated elements with Z < 5 (the framework's
//     "metal" pool — everything that is not a high-impedance nonmetal or
//     noble gas).
//   - FullPool: all 47 tabulated elements.
//   - PoolZ: impedances for an explicit symbol list.
//
// Errors:
//
//   - ErrInsufficientPool: candidate pool smaller than the sample size.
//   - ErrBadTrialSpec: non-positive trial count or sample size < 2.
//   - ErrDegenerateTable: a contingency row or column sums to zero.
//   - ErrBadTable: malformed contingency input (empty, ragged, negative,
//     or fewer than two rows/columns).
//
// Complexity: ClusterTest is O(N·k); CategoryBlockTest is O(n + r·c).
package stats
