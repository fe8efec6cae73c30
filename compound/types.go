package compound

import "errors"

// Sentinel errors for compound prediction.
var (
	// ErrEmptyCompound indicates Predict was called with zero symbols.
	ErrEmptyCompound = errors.New("compound: element sequence must be non-empty")
)

// Stability is the coarse three-way stability label of a predicted compound.
type Stability int

const (
	// Stable: every constituent pair sits in the metallic/covalent band.
	Stable Stability = iota
	// Unstable: some pairs are ionic, but fewer than half.
	Unstable
	// IonicDominant: at least half of all constituent pairs are ionic.
	IonicDominant
)

// stabilityNames maps Stability values to their labels.
var stabilityNames = [...]string{"stable", "unstable", "ionic-dominant"}

// String returns the lowercase stability label.
func (s Stability) String() string {
	if s < Stable || s > IonicDominant {
		return "unknown"
	}

	return stabilityNames[s]
}

// Prediction is the aggregate outcome for a multi-element set.
type Prediction struct {
	// Symbols echoes the constituent symbols in input order.
	Symbols []string
	// TotalMass is ΣM over constituents, in amu.
	TotalMass float64
	// AcousticWeighted is the mass-weighted mean of per-element acoustic
	// frequencies: Σ(Mᵢ·fᵢ)/ΣM.
	AcousticWeighted float64
	// AcousticLumped treats the compound as one body: k·(ΣM)^(−1/3).
	AcousticLumped float64
	// ChemicalMean is the arithmetic mean of per-element chemical
	// frequencies (bonds involve multiple atoms).
	ChemicalMean float64
	// ImpedanceGeoMean is the geometric mean of constituent impedances.
	ImpedanceGeoMean float64
	// MeanMatch is the mean pairwise matching ratio R over all unordered
	// constituent pairs; 1 for a single-element set (nothing mismatched).
	MeanMatch float64
	// IonicPairs counts pairs whose impedance ratio exceeds the covalent
	// cutoff; Pairs is the total number of unordered pairs.
	IonicPairs, Pairs int
	// Stability is the coarse label derived from the pair counts.
	Stability Stability
}
