package impedance

import "errors"

// Sentinel errors for impedance computation.
var (
	// ErrInvalidConstants indicates out-of-domain raw constants in a table
	// entry (ionization ≤ 0, radius ≤ 0, or defined electronegativity < 0).
	// It signals a corrupted table, not bad user input.
	ErrInvalidConstants = errors.New("impedance: non-positive or out-of-domain atomic constants")
)

// Fixed category thresholds on the impedance scalar.
const (
	// GiverMax is the exclusive upper bound of the GIVER category.
	GiverMax = 2.0
	// BridgeMax is the inclusive upper bound of the BRIDGE category.
	BridgeMax = 4.0
)

// Fixed bond-type cutoffs on the raw impedance ratio max/min.
const (
	// MetallicRatioMax: ratios below it classify as metallic bonding.
	MetallicRatioMax = 1.3
	// CovalentRatioMax: ratios up to and including it classify as covalent;
	// beyond it the pair is ionic. Both cutoffs are empirically derived
	// constants of the framework, not universal chemistry.
	CovalentRatioMax = 3.5
)

// Category labels the electron-donating/accepting behavior implied by Z.
type Category int

const (
	// Giver: Z < 2.0 — low impedance, donates electrons readily.
	Giver Category = iota
	// Bridge: 2.0 ≤ Z ≤ 4.0 — mid impedance, variable/catalytic behavior.
	Bridge
	// Taker: Z > 4.0 — high impedance, accepts electrons.
	Taker
)

// categoryNames maps Category values to their canonical uppercase labels.
var categoryNames = [...]string{"GIVER", "BRIDGE", "TAKER"}

// String returns the canonical uppercase label.
func (c Category) String() string {
	if c < Giver || c > Taker {
		return "UNKNOWN"
	}

	return categoryNames[c]
}

// BondType labels the bonding regime predicted for an element pair.
type BondType int

const (
	// Metallic: impedance ratio < 1.3 — near-equal impedances.
	Metallic BondType = iota
	// Covalent: impedance ratio in [1.3, 3.5].
	Covalent
	// Ionic: impedance ratio > 3.5 — strongly mismatched impedances.
	Ionic
)

// bondNames maps BondType values to lowercase labels.
var bondNames = [...]string{"metallic", "covalent", "ionic"}

// String returns the lowercase bond label.
func (b BondType) String() string {
	if b < Metallic || b > Ionic {
		return "unknown"
	}

	return bondNames[b]
}

// Result is the outcome of a single-element impedance computation.
type Result struct {
	// Z is the impedance scalar in eV/Å.
	Z float64
	// ZLog is ln(Z+1), the scale-invariant form used for aggregation.
	ZLog float64
	// Category is the step-function classification of Z.
	Category Category
}

// MatchResult is the outcome of a pairwise matching computation.
type MatchResult struct {
	// R is the matching ratio 4·Z₁Z₂/(Z₁+Z₂)², in (0,1].
	R float64
	// ZRatio is max(Z₁,Z₂)/min(Z₁,Z₂), always ≥ 1.
	ZRatio float64
	// Bond is the bond-type label decided from ZRatio.
	Bond BondType
}
