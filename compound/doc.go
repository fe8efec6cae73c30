// Package compound aggregates impedance and frequency data across a
// multi-element set into a coarse stability/frequency prediction.
//
// What:
//
//   - Predict walks a sequence of element symbols and produces:
//     total mass, the mass-weighted mean of the constituents' acoustic
//     frequencies, the lumped acoustic frequency k·(ΣM)^(−1/3) of the
//     combined mass, the mean chemical frequency, the geometric-mean
//     impedance, the mean pairwise matching ratio, and a stability label.
//
// Stability rule (fixed, documented):
//
//   - Stable: no constituent pair is ionic (all impedance ratios ≤ 3.5).
//   - IonicDominant: at least half of all pairs are ionic.
//   - Unstable: some pairs are ionic, but fewer than half.
//   - A single-element "compound" has no pairs and is trivially Stable.
//
// Errors:
//
//   - ErrEmptyCompound: the symbol sequence is empty.
//   - element.ErrUnknownElement: any symbol missing from the table
//     (propagated unchanged, never defaulted).
//
// Complexity: Predict is O(n²) in the number of constituents (pairwise
// matching dominates).
package compound
