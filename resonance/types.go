package resonance

import "errors"

// Sentinel errors for frequency derivation.
var (
	// ErrInvalidRecord indicates a record with non-positive ionization
	// energy or mass; such values can only come from a corrupted table.
	ErrInvalidRecord = errors.New("resonance: non-positive ionization energy or mass")
)

// PlanckEV is the Planck constant in eV·s, the divisor of both the quantum
// and chemical frequency proxies.
const PlanckEV = 4.135667e-15

// chemicalBondFraction estimates a typical bond energy as a fraction of
// the first ionization energy (covalent bonds run ~2-4 eV against
// ionizations of ~8-14 eV).
const chemicalBondFraction = 0.3

// Band is one nominal brainwave band target used by the affinity search.
type Band struct {
	// Name is the conventional band name, e.g. "alpha".
	Name string
	// Hz is the nominal target frequency of the band.
	Hz float64
}

// Frequencies bundles the three channel proxies of one element, all in Hz.
type Frequencies struct {
	// Quantum is Eᵢ/h, the electronic-transition scale.
	Quantum float64
	// Acoustic is k·M^(−1/3), the mass-scaling channel.
	Acoustic float64
	// Chemical is 0.3·Eᵢ/h, the bond-energy proxy.
	Chemical float64
}

// AffinityResult is the outcome of the heuristic affinity search.
type AffinityResult struct {
	// Score is the final affinity in [0, 1].
	Score float64
	// Band is the name of the best-matching band, or "none" when no band
	// produced a positive harmonic term.
	Band string
}

// Options carries the tunable constants of this package. All defaults
// reproduce the documented reference behavior; none of them is a physical
// law, and callers may retune them freely.
type Options struct {
	// AcousticScale is k in f = k·M^(−1/3). Default 1e13.
	AcousticScale float64
	// OptimalImpedance centers the impedance bell. Default 3.0, the
	// midpoint of the BRIDGE category.
	OptimalImpedance float64
	// ImpedanceWidth is the bell width divisor. Default 2.0.
	ImpedanceWidth float64
	// HarmonicSharpness is the decay rate applied to the deviation from a
	// perfect decade subharmonic. Default 5.0.
	HarmonicSharpness float64
	// Bands is the ordered list of band targets. Order matters: ties keep
	// the earlier band. Default: delta, theta, alpha, beta, gamma,
	// high_gamma at 2/6/10/20/40/100 Hz.
	Bands []Band
}

// DefaultOptions returns the documented reference configuration.
func DefaultOptions() Options {
	return Options{
		AcousticScale:     1e13,
		OptimalImpedance:  3.0,
		ImpedanceWidth:    2.0,
		HarmonicSharpness: 5.0,
		Bands: []Band{
			{Name: "delta", Hz: 2},
			{Name: "theta", Hz: 6},
			{Name: "alpha", Hz: 10},
			{Name: "beta", Hz: 20},
			{Name: "gamma", Hz: 40},
			{Name: "high_gamma", Hz: 100},
		},
	}
}
