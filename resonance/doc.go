// Package resonance derives the framework's three per-element channel
// frequencies and its heuristic consciousness-affinity score.
//
// What:
//
//   - Channels computes three frequency proxies from raw constants:
//     quantum   f = Eᵢ / h            (electronic-transition scale, PHz)
//     acoustic  f = k · M^(−1/3)      (mass scaling; k defaults to 1e13 Hz·amu^⅓)
//     chemical  f = 0.3·Eᵢ / h        (bond-energy proxy)
//   - Affinity scores how close an element sits to the framework's
//     "biological" sweet spot: a decade-subharmonic search of the acoustic
//     frequency against six nominal brainwave band targets (delta 2 Hz,
//     theta 6, alpha 10, beta 20, gamma 40, high-gamma 100), multiplied by
//     a Gaussian bell centered on impedance Z = 3 (the BRIDGE midpoint).
//
// Why:
//
//   - The affinity score is explicitly heuristic and exploratory. It is
//     kept in its own package, away from the impedance/match arithmetic,
//     so correctness tests can treat it as an opaque formula. The contract
//     is behavioral parity with the documented formula, nothing more.
//
// Options:
//
//   - AcousticScale: the acoustic constant k. Arbitrary calibration
//     (1 amu ↦ ~1e13 Hz, molecular phonon scale), not a derived quantity.
//   - OptimalImpedance / ImpedanceWidth: center and width of the
//     impedance bell.
//   - HarmonicSharpness: decay rate of the subharmonic deviation term.
//   - Bands: the ordered band targets searched for decade subharmonics.
//
// Errors:
//
//   - ErrInvalidRecord: non-positive ionization energy or mass.
//
// Complexity: all functions are O(1) (O(len(Bands)) for Affinity).
package resonance
