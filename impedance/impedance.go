package impedance

import (
	"math"

	"github.com/athanor-lab/athanor/element"
)

// pmPerAngstrom converts tabulated radii (pm) to ångströms for the formula.
const pmPerAngstrom = 100.0

// Compute derives the impedance scalar, its log form, and the category for
// one element record.
//
// Formula (electronegativity defined):
//
//	Z = √(Eᵢ · χ) / r[Å]
//
// Noble-gas special case (no electronegativity):
//
//	Z = Eᵢ / r[Å]
//
// Contract: rec must carry Ionization > 0, Radius > 0, and (when defined)
// Electronegativity ≥ 0; violations return ErrInvalidConstants. Given
// identical inputs the result is bit-for-bit identical across calls.
//
// Complexity: O(1).
func Compute(rec element.Record) (Result, error) {
	if err := validateConstants(rec); err != nil {
		return Result{}, err
	}

	var (
		rAngstrom float64 // radius in ångströms
		z         float64 // impedance scalar
	)
	rAngstrom = rec.Radius / pmPerAngstrom
	if rec.Noble() {
		// Noble gases resist interaction entirely; ionization energy alone
		// stands in for the missing field-strength term.
		z = rec.Ionization / rAngstrom
	} else {
		z = math.Sqrt(rec.Ionization*rec.Electronegativity) / rAngstrom
	}

	return Result{Z: z, ZLog: math.Log(z + 1), Category: Categorize(z)}, nil
}

// Categorize maps an impedance value onto the fixed three-way partition.
// Boundary policy: both thresholds belong to BRIDGE (Z=2.0 and Z=4.0 are
// BRIDGE; no hysteresis, total order).
//
// Complexity: O(1).
func Categorize(z float64) Category {
	switch {
	case z < GiverMax:
		return Giver
	case z <= BridgeMax:
		return Bridge
	default:
		return Taker
	}
}

// validateConstants enforces the table-entry contract shared by Compute
// and Match. A failure here means the element table itself is corrupt.
//
// Complexity: O(1).
func validateConstants(rec element.Record) error {
	if rec.Ionization <= 0 {
		return ErrInvalidConstants
	}
	if rec.Radius <= 0 {
		return ErrInvalidConstants
	}
	if rec.HasElectronegativity && rec.Electronegativity < 0 {
		return ErrInvalidConstants
	}

	return nil
}
