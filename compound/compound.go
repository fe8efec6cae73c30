package compound

import (
	"math"

	"github.com/athanor-lab/athanor/element"
	"github.com/athanor-lab/athanor/impedance"
	"github.com/athanor-lab/athanor/resonance"
)

// Predict aggregates the constituents named by symbols into a Prediction.
// Symbols may repeat (stoichiometry by repetition: "H","H","O").
//
// Contract:
//   - symbols must be non-empty (ErrEmptyCompound).
//   - every symbol must resolve in tbl (element.ErrUnknownElement).
//   - opts configures the acoustic scaling shared with package resonance;
//     pass resonance.DefaultOptions() for reference behavior.
//
// Complexity: O(n²) time, O(n) space, n = len(symbols).
func Predict(tbl *element.Table, symbols []string, opts resonance.Options) (Prediction, error) {
	var n int
	n = len(symbols)
	if n == 0 {
		return Prediction{}, ErrEmptyCompound
	}

	// Stage 1: resolve symbols and compute per-element quantities.
	var (
		recs  = make([]element.Record, n)
		zs    = make([]float64, n)
		freqs = make([]resonance.Frequencies, n)
		i     int
		err   error
	)
	for i = 0; i < n; i++ {
		recs[i], err = tbl.Lookup(symbols[i])
		if err != nil {
			return Prediction{}, err
		}
		var res impedance.Result
		res, err = impedance.Compute(recs[i])
		if err != nil {
			return Prediction{}, err
		}
		zs[i] = res.Z
		freqs[i], err = resonance.Channels(recs[i], opts)
		if err != nil {
			return Prediction{}, err
		}
	}

	// Stage 2: mass and frequency aggregates.
	var (
		totalMass   float64 // ΣM
		weightedAc  float64 // Σ(M·f_acoustic), divided by ΣM below
		chemicalSum float64 // Σ f_chemical
		logZSum     float64 // Σ ln(Z), for the geometric mean
	)
	for i = 0; i < n; i++ {
		totalMass += recs[i].Mass
		weightedAc += recs[i].Mass * freqs[i].Acoustic
		chemicalSum += freqs[i].Chemical
		logZSum += math.Log(zs[i])
	}

	// Stage 3: pairwise matching over all unordered pairs.
	var (
		j          int
		matchSum   float64
		pairs      int
		ionicPairs int
		m          impedance.MatchResult
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m = impedance.MatchZ(zs[i], zs[j])
			matchSum += m.R
			pairs++
			if m.Bond == impedance.Ionic {
				ionicPairs++
			}
		}
	}
	meanMatch := 1.0 // single element: nothing to mismatch
	if pairs > 0 {
		meanMatch = matchSum / float64(pairs)
	}

	out := Prediction{
		Symbols:          append([]string(nil), symbols...),
		TotalMass:        totalMass,
		AcousticWeighted: weightedAc / totalMass,
		AcousticLumped:   resonance.AcousticForMass(totalMass, opts),
		ChemicalMean:     chemicalSum / float64(n),
		ImpedanceGeoMean: math.Exp(logZSum / float64(n)),
		MeanMatch:        meanMatch,
		IonicPairs:       ionicPairs,
		Pairs:            pairs,
		Stability:        stabilityOf(ionicPairs, pairs),
	}

	return out, nil
}

// stabilityOf applies the fixed pair-count rule documented in doc.go.
//
// Complexity: O(1).
func stabilityOf(ionic, pairs int) Stability {
	switch {
	case ionic == 0:
		return Stable
	case 2*ionic >= pairs:
		return IonicDominant
	default:
		return Unstable
	}
}
