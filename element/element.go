package element

import "fmt"

// Table is the read-only element registry. Construct it once with NewTable
// and pass it explicitly to consumers; there is no package-level instance.
// A Table never changes after construction, so it is safe for concurrent
// readers without locking.
type Table struct {
	bySymbol  map[string]Record
	symbols   []string // ordered by atomic number
	planetary []PlanetaryMetal
}

// NewTable builds the registry from the built-in constant data.
//
// Complexity: O(n) time and space, n = number of tabulated elements.
func NewTable() *Table {
	var t Table
	t.bySymbol = make(map[string]Record, len(rawRecords))
	t.symbols = make([]string, 0, len(rawRecords))

	var rec Record
	for _, rec = range rawRecords { // rawRecords is ordered by atomic number
		t.bySymbol[rec.Symbol] = rec
		t.symbols = append(t.symbols, rec.Symbol)
	}
	t.planetary = rawPlanetary

	return &t
}

// Len returns the number of tabulated elements.
func (t *Table) Len() int { return len(t.symbols) }

// Lookup returns the Record for symbol. The match is exact and
// case-sensitive; a miss returns ErrUnknownElement wrapped with the
// offending symbol, never a zero-valued default.
//
// Complexity: O(1).
func (t *Table) Lookup(symbol string) (Record, error) {
	rec, ok := t.bySymbol[symbol]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}

	return rec, nil
}

// Symbols returns all tabulated symbols ordered by atomic number.
// The returned slice is a copy; callers may reorder it freely.
//
// Complexity: O(n).
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)

	return out
}

// Records returns all Records ordered by atomic number.
//
// Complexity: O(n).
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.symbols))

	var sym string
	for _, sym = range t.symbols {
		out = append(out, t.bySymbol[sym])
	}

	return out
}

// PlanetaryMetals returns the seven classical metal↔planet annotations in
// their traditional order (Sun → Saturn). The returned slice is a copy.
func (t *Table) PlanetaryMetals() []PlanetaryMetal {
	out := make([]PlanetaryMetal, len(t.planetary))
	copy(out, t.planetary)

	return out
}

// Planetary returns the planetary annotation for symbol, if any.
// The second return reports presence; absence is not an error (most
// elements simply have no correspondence).
func (t *Table) Planetary(symbol string) (PlanetaryMetal, bool) {
	var pm PlanetaryMetal
	for _, pm = range t.planetary {
		if pm.Symbol == symbol {
			return pm, true
		}
	}

	return PlanetaryMetal{}, false
}
