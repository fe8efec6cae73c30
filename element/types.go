package element

import "errors"

// Sentinel errors for element lookups.
var (
	// ErrUnknownElement indicates a symbol with no entry in the table.
	// Matching is case-sensitive: "na" does not resolve to "Na".
	ErrUnknownElement = errors.New("element: unknown symbol")
)

// Block is the orbital block (s/p/d/f) of an element. It is used as an
// independent categorical variable by the statistical validator and plays
// no role in the impedance arithmetic itself.
type Block int

const (
	// BlockS covers groups 1-2 plus H and He.
	BlockS Block = iota
	// BlockP covers groups 13-18 (He excluded by convention here).
	BlockP
	// BlockD covers the transition metals.
	BlockD
	// BlockF covers lanthanides and actinides.
	BlockF
)

// blockNames maps Block values to their conventional lowercase letters.
var blockNames = [...]string{"s", "p", "d", "f"}

// String returns the conventional lowercase block letter.
func (b Block) String() string {
	if b < BlockS || b > BlockF {
		return "?"
	}

	return blockNames[b]
}

// Record holds the raw, hand-curated constants of a single element.
// Records are plain values; callers receive copies and cannot corrupt
// the table through them.
type Record struct {
	// Symbol is the unique 1-2 character chemical symbol (case-sensitive).
	Symbol string
	// Name is the English element name.
	Name string
	// Number is the atomic number (Z in the periodic-table sense; the
	// impedance scalar is an unrelated quantity also called Z).
	Number int
	// Mass is the standard atomic mass in amu.
	Mass float64
	// Ionization is the first ionization energy in eV.
	Ionization float64
	// Electronegativity is the Pauling electronegativity. Only meaningful
	// when HasElectronegativity is true; noble gases have none.
	Electronegativity float64
	// HasElectronegativity reports whether Electronegativity is defined.
	HasElectronegativity bool
	// Radius is the atomic radius in picometers.
	Radius float64
	// Block is the orbital block (s/p/d/f).
	Block Block
	// Config is the ground-state electron configuration, e.g. "[Ar]3d10 4s1".
	Config string
}

// Noble reports whether the record lacks a defined electronegativity
// (the noble-gas special case in the impedance formula).
func (r Record) Noble() bool { return !r.HasElectronegativity }

// PlanetaryMetal annotates one of the seven classical metals with its
// traditional planetary correspondence. Purely informational.
type PlanetaryMetal struct {
	// Symbol is the chemical symbol of the metal (e.g. "Au").
	Symbol string
	// Planet is the corresponding classical planet.
	Planet string
	// Glyph is the astrological glyph of the planet.
	Glyph string
	// Day is the weekday traditionally assigned to the planet.
	Day string
	// Quality is the alchemical quality attributed to the metal.
	Quality string
}
