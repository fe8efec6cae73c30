// Package athanor is a small computational framework for the "atomic
// impedance" model: a scalar derived from three tabulated per-element
// constants, used to classify elements and to score pairwise combinations.
//
// 🚀 What is athanor?
//
//	A deterministic, in-memory library that brings together:
//		• element/   — the immutable 47-element constant table + planetary metals
//		• impedance/ — impedance Z = √(Eᵢ·χ)/r, GIVER/BRIDGE/TAKER categories,
//		               transmission-line matching R = 4·Z₁Z₂/(Z₁+Z₂)² + bond types
//		• resonance/ — quantum/acoustic/chemical channel frequencies and the
//		               heuristic consciousness-affinity scorer
//		• compound/  — multi-element aggregation: mass-weighted frequencies and
//		               a coarse stability prediction
//		• stats/     — Monte Carlo clustering test (seedable, parallelizable)
//		               and the Category×Block chi-square association test
//
// ✨ Why choose athanor?
//
//   - Deterministic – same inputs (and seeds) ⇒ identical results, always
//   - Strict sentinels – every failure is a named error kind, never a default
//   - Pure computation – no I/O, no network, no persistence, no globals
//   - Explicitly labeled heuristics – the exploratory scoring lives apart
//     from the arithmetic core, with documented tunable constants
//
// Quick taste:
//
//	tbl := element.NewTable()
//	rec, _ := tbl.Lookup("Cu")
//	res, _ := impedance.Compute(rec)   // Z≈2.64, BRIDGE
//
// The model itself is speculative chemistry; this library reproduces its
// arithmetic faithfully and makes no claim beyond behavioral parity.
package athanor
