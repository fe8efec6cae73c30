package resonance

import "math"

// tieEpsilon is the relative improvement below which two bands count as
// tied; the earlier band is kept. Decade-separated band targets tie
// analytically, and the epsilon absorbs last-ulp logarithm noise.
const tieEpsilon = 1e-9

// Affinity runs the heuristic consciousness-affinity search for one
// element, given its channel frequencies and impedance value.
//
// Procedure (opaque formula; behavioral parity is the contract):
//  1. For each band b in opts.Bands, in order:
//     ratio   = f.Acoustic / b.Hz
//     dev     = |log10(ratio) − round(log10(ratio))|   (decade deviation)
//     harmonic = exp(−HarmonicSharpness · dev)
//     Keep the band with the greatest harmonic term. Improvements below a
//     1e-9 relative epsilon count as ties and keep the earlier band: band
//     targets a decade apart (delta/beta, alpha/high-gamma) tie exactly in
//     the analytic formula, and the epsilon keeps the winner stable under
//     last-ulp logarithm differences.
//  2. bell  = exp(−((z − OptimalImpedance)/ImpedanceWidth)²)
//  3. Score = min(1, bestHarmonic · bell)
//
// The decade (×10) relationship stands in for an octave search: biological
// ion frequencies are modeled as subharmonics of the acoustic channel.
// Nothing here is physically validated; the constants are documented
// defaults, not laws.
//
// Complexity: O(len(opts.Bands)).
func Affinity(f Frequencies, z float64, opts Options) AffinityResult {
	var (
		sharp float64 // harmonic decay rate
		opt   float64 // impedance bell center
		width float64 // impedance bell width
	)
	sharp, opt, width = opts.HarmonicSharpness, opts.OptimalImpedance, opts.ImpedanceWidth
	def := DefaultOptions()
	if sharp == 0 {
		sharp = def.HarmonicSharpness
	}
	if opt == 0 {
		opt = def.OptimalImpedance
	}
	if width == 0 {
		width = def.ImpedanceWidth
	}
	bands := opts.Bands
	if len(bands) == 0 {
		bands = def.Bands
	}

	var (
		best     float64 // best harmonic term so far
		bestBand string  // band that produced it
		b        Band    // current band
		logRatio float64 // log10 of the subharmonic ratio
		dev      float64 // deviation from the nearest decade
		harmonic float64 // harmonic term for the current band
	)
	bestBand = "none"
	for _, b = range bands {
		logRatio = math.Log10(f.Acoustic / b.Hz)
		dev = math.Abs(logRatio - math.Round(logRatio))
		harmonic = math.Exp(-dev * sharp)
		if harmonic > best*(1+tieEpsilon) {
			best = harmonic
			bestBand = b.Name
		}
	}

	var bell, score float64
	bell = math.Exp(-sq((z - opt) / width))
	score = best * bell
	if score > 1 {
		score = 1
	}

	return AffinityResult{Score: score, Band: bestBand}
}

// sq returns x².
func sq(x float64) float64 { return x * x }
