// Package element provides the immutable per-element constant table that
// every other athanor package consumes.
//
// What:
//
//   - Record bundles the raw constants of one element: atomic number, mass,
//     first ionization energy, Pauling electronegativity (absent for noble
//     gases), atomic radius, orbital block, and electron configuration.
//   - Table is the read-only registry of 47 tabulated elements, built once
//     by NewTable and safe to share between goroutines.
//   - PlanetaryMetals exposes the seven classical metal↔planet
//     correspondences (Au, Ag, Hg, Cu, Fe, Sn, Pb). The annotations are
//     informational only and enter no computation.
//
// Why:
//
//   - A single, explicit data source: no ambient globals, no mutation,
//     no silent defaults for unknown symbols.
//   - Stable iteration: Symbols returns elements ordered by atomic number,
//     so every derived statistic is reproducible run to run.
//
// Data provenance: NIST / CRC Handbook values, hand-curated. Radii are in
// picometers, ionization energies in eV, masses in amu.
//
// Errors:
//
//   - ErrUnknownElement: symbol not present in the table (case-sensitive).
//
// Complexity: Lookup is O(1); Symbols and PlanetaryMetals are O(n) copies.
package element
