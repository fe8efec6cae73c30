package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athanor-lab/athanor/element"
)

// TestTable_LookupKnown verifies that a known symbol resolves to its full
// hand-curated record.
func TestTable_LookupKnown(t *testing.T) {
	tbl := element.NewTable()

	rec, err := tbl.Lookup("Fe")
	require.NoError(t, err, "Fe is tabulated")
	assert.Equal(t, "Iron", rec.Name)
	assert.Equal(t, 26, rec.Number)
	assert.Equal(t, 55.85, rec.Mass)
	assert.Equal(t, 7.902, rec.Ionization)
	assert.Equal(t, 1.83, rec.Electronegativity)
	assert.True(t, rec.HasElectronegativity)
	assert.Equal(t, 156.0, rec.Radius)
	assert.Equal(t, element.BlockD, rec.Block)
	assert.Equal(t, "[Ar]3d6 4s2", rec.Config)
}

// TestTable_LookupUnknown verifies that a missing symbol surfaces
// ErrUnknownElement and never a defaulted record.
func TestTable_LookupUnknown(t *testing.T) {
	tbl := element.NewTable()

	_, err := tbl.Lookup("Xx")
	assert.ErrorIs(t, err, element.ErrUnknownElement, "Xx is not tabulated")
	assert.ErrorContains(t, err, "Xx", "error names the offending symbol")
}

// TestTable_LookupCaseSensitive verifies the exact-match contract:
// lowercase variants of valid symbols do not resolve.
func TestTable_LookupCaseSensitive(t *testing.T) {
	tbl := element.NewTable()

	_, err := tbl.Lookup("na")
	assert.ErrorIs(t, err, element.ErrUnknownElement, "matching is case-sensitive")

	_, err = tbl.Lookup("FE")
	assert.ErrorIs(t, err, element.ErrUnknownElement, "matching is case-sensitive")
}

// TestTable_SymbolsOrdered verifies the stable atomic-number ordering and
// the expected table size.
func TestTable_SymbolsOrdered(t *testing.T) {
	tbl := element.NewTable()
	syms := tbl.Symbols()

	require.Equal(t, 47, len(syms), "47 tabulated elements")
	assert.Equal(t, "H", syms[0])
	assert.Equal(t, "U", syms[len(syms)-1])

	prev := 0
	for _, s := range syms {
		rec, err := tbl.Lookup(s)
		require.NoError(t, err)
		assert.Greater(t, rec.Number, prev, "atomic numbers strictly ascend")
		prev = rec.Number
	}
}

// TestTable_NobleGases verifies that exactly the four tabulated noble
// gases lack a defined electronegativity.
func TestTable_NobleGases(t *testing.T) {
	tbl := element.NewTable()

	var nobles []string
	for _, rec := range tbl.Records() {
		if rec.Noble() {
			nobles = append(nobles, rec.Symbol)
		}
	}
	assert.Equal(t, []string{"He", "Ne", "Ar", "Kr"}, nobles)
}

// TestTable_PlanetaryMetals verifies the seven classical correspondences
// and their traditional ordering.
func TestTable_PlanetaryMetals(t *testing.T) {
	tbl := element.NewTable()
	metals := tbl.PlanetaryMetals()

	require.Len(t, metals, 7)
	assert.Equal(t, "Au", metals[0].Symbol)
	assert.Equal(t, "Sun", metals[0].Planet)
	assert.Equal(t, "Pb", metals[6].Symbol)
	assert.Equal(t, "Saturn", metals[6].Planet)

	// Every annotated metal must itself be tabulated.
	for _, pm := range metals {
		_, err := tbl.Lookup(pm.Symbol)
		assert.NoError(t, err, "planetary metal %s must be tabulated", pm.Symbol)
	}
}

// TestTable_Planetary verifies presence/absence reporting of the
// per-symbol planetary accessor.
func TestTable_Planetary(t *testing.T) {
	tbl := element.NewTable()

	pm, ok := tbl.Planetary("Hg")
	require.True(t, ok)
	assert.Equal(t, "Mercury", pm.Planet)
	assert.Equal(t, "Wednesday", pm.Day)

	_, ok = tbl.Planetary("H")
	assert.False(t, ok, "hydrogen has no planetary correspondence")
}

// TestTable_Immutable verifies that mutating returned copies cannot
// corrupt the table.
func TestTable_Immutable(t *testing.T) {
	tbl := element.NewTable()

	rec, err := tbl.Lookup("Cu")
	require.NoError(t, err)
	rec.Mass = -1 // mutate the copy

	again, err := tbl.Lookup("Cu")
	require.NoError(t, err)
	assert.Equal(t, 63.55, again.Mass, "table entry unchanged")

	syms := tbl.Symbols()
	syms[0] = "Xx" // mutate the copy
	assert.Equal(t, "H", tbl.Symbols()[0], "symbol order unchanged")
}

// TestBlock_String verifies the conventional block letters.
func TestBlock_String(t *testing.T) {
	assert.Equal(t, "s", element.BlockS.String())
	assert.Equal(t, "p", element.BlockP.String())
	assert.Equal(t, "d", element.BlockD.String())
	assert.Equal(t, "f", element.BlockF.String())
	assert.Equal(t, "?", element.Block(99).String())
}
