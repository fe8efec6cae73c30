package impedance

import "github.com/athanor-lab/athanor/element"

// Match computes the transmission-line matching ratio and bond-type label
// for two element records. The underlying formula is symmetric, so
// Match(a, b) and Match(b, a) are exactly equal, and Match(a, a) yields
// R = 1 for any valid record.
//
// Errors: ErrInvalidConstants if either record violates the table contract.
//
// Complexity: O(1).
func Match(a, b element.Record) (MatchResult, error) {
	ra, err := Compute(a)
	if err != nil {
		return MatchResult{}, err
	}
	rb, err := Compute(b)
	if err != nil {
		return MatchResult{}, err
	}

	return MatchZ(ra.Z, rb.Z), nil
}

// MatchZ scores two already-computed impedance values.
//
//	R = 4·Z₁Z₂ / (Z₁+Z₂)²      — power-transfer ratio, R ∈ (0,1]
//	ZRatio = max(Z₁,Z₂)/min(Z₁,Z₂)
//
// Bond-type rule (the single canonical rule of this package): the label is
// decided from ZRatio alone — < 1.3 metallic, ≤ 3.5 covalent, else ionic.
// R is reported for callers but never consulted for the label; the source
// material's alternative R-based and Δχ-based rules are intentionally not
// implemented, since the three rules disagree on boundary cases.
//
// Contract: both impedances must be positive (guaranteed for any Z that
// came out of Compute).
//
// Complexity: O(1).
func MatchZ(z1, z2 float64) MatchResult {
	var (
		sum   float64 // Z₁+Z₂
		r     float64 // matching ratio
		ratio float64 // max/min impedance ratio
	)
	sum = z1 + z2
	r = 4 * z1 * z2 / (sum * sum)

	ratio = z1 / z2
	if z2 > z1 {
		ratio = z2 / z1
	}

	return MatchResult{R: r, ZRatio: ratio, Bond: bondFromRatio(ratio)}
}

// bondFromRatio applies the fixed ratio cutoffs.
//
// Complexity: O(1).
func bondFromRatio(ratio float64) BondType {
	switch {
	case ratio < MetallicRatioMax:
		return Metallic
	case ratio <= CovalentRatioMax:
		return Covalent
	default:
		return Ionic
	}
}
