// Package impedance implements the framework's arithmetic core: the scalar
// atomic impedance, its three-way categorization, and the transmission-line
// matching ratio between two elements.
//
// What:
//
//   - Compute derives Z = √(Eᵢ·χ) / r from a Record's raw constants, where
//     Eᵢ is the first ionization energy (eV), χ the Pauling
//     electronegativity, and r the atomic radius in ångströms (pm/100).
//     Noble gases, which have no defined χ, use Z = Eᵢ / r instead.
//   - Categorize maps Z onto {GIVER, BRIDGE, TAKER} against two fixed
//     thresholds (2.0 and 4.0), with both boundaries belonging to BRIDGE.
//   - Match scores a pair of impedances with R = 4·Z₁Z₂/(Z₁+Z₂)², the
//     power-transfer ratio of a mismatched transmission line: R ∈ (0,1],
//     R = 1 iff Z₁ = Z₂, and the formula is exactly commutative.
//   - The bond-type label (metallic/covalent/ionic) is decided by the
//     raw impedance ratio max(Z₁,Z₂)/min(Z₁,Z₂) against fixed cutoffs
//     1.3 and 3.5. This is the single canonical rule in this package;
//     R itself is reported but never consulted for the label.
//
// Why:
//
//   - Everything here is a deterministic pure function: identical inputs
//     produce bit-identical outputs, so results are reproducible and
//     trivially cacheable.
//
// Errors:
//
//   - ErrInvalidConstants: a record carries a non-positive ionization
//     energy or radius, or a negative electronegativity. This can only
//     come from a corrupted table and is a contract violation, not a
//     recoverable user error.
//
// Complexity: all functions are O(1).
package impedance
