package resonance

import (
	"math"

	"github.com/athanor-lab/athanor/element"
)

// Channels computes the three channel frequencies for one element record.
//
//	Quantum:  f = Eᵢ / h        — fundamental electronic transition
//	Acoustic: f = k · M^(−1/3)  — mass scaling, k = opts.AcousticScale
//	Chemical: f = 0.3·Eᵢ / h    — typical bond energy as ionization fraction
//
// Contract: rec.Ionization > 0 and rec.Mass > 0, else ErrInvalidRecord.
// Deterministic: identical inputs yield bit-identical outputs.
//
// Complexity: O(1).
func Channels(rec element.Record, opts Options) (Frequencies, error) {
	if rec.Ionization <= 0 || rec.Mass <= 0 {
		return Frequencies{}, ErrInvalidRecord
	}

	var k float64
	k = opts.AcousticScale
	if k == 0 {
		k = DefaultOptions().AcousticScale
	}

	return Frequencies{
		Quantum:  rec.Ionization / PlanckEV,
		Acoustic: k * math.Pow(rec.Mass, -1.0/3.0),
		Chemical: chemicalBondFraction * rec.Ionization / PlanckEV,
	}, nil
}

// AcousticForMass computes the acoustic channel for an arbitrary mass.
// Exposed for the compound aggregator, which needs the same scaling law
// over a summed mass.
//
// Complexity: O(1).
func AcousticForMass(mass float64, opts Options) float64 {
	var k float64
	k = opts.AcousticScale
	if k == 0 {
		k = DefaultOptions().AcousticScale
	}

	return k * math.Pow(mass, -1.0/3.0)
}
