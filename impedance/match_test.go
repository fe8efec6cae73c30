package impedance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athanor-lab/athanor/element"
	"github.com/athanor-lab/athanor/impedance"
)

// TestMatch_ReferenceValues pins the matching ratio and bond labels for
// the documented reference pairs.
func TestMatch_ReferenceValues(t *testing.T) {
	tbl := element.NewTable()

	cases := []struct {
		a, b string
		r    float64
		bond impedance.BondType
	}{
		{"Na", "Li", 0.9920107841943849, impedance.Metallic},
		{"Cu", "Sn", 0.9999759486590917, impedance.Metallic},
		{"Na", "Cl", 0.5129716258833504, impedance.Ionic},
		{"Na", "K", 0.9622941769089806, impedance.Covalent},
	}
	for _, tc := range cases {
		m, err := impedance.Match(mustLookup(t, tbl, tc.a), mustLookup(t, tbl, tc.b))
		require.NoError(t, err, "%s-%s", tc.a, tc.b)
		assert.InDelta(t, tc.r, m.R, 1e-9, "R of %s-%s", tc.a, tc.b)
		assert.Equal(t, tc.bond, m.Bond, "bond of %s-%s", tc.a, tc.b)
	}
}

// TestMatch_Commutative verifies exact commutativity over every unordered
// pair in the table.
func TestMatch_Commutative(t *testing.T) {
	tbl := element.NewTable()
	recs := tbl.Records()

	for i := 0; i < len(recs); i++ {
		for j := i + 1; j < len(recs); j++ {
			ab, err := impedance.Match(recs[i], recs[j])
			require.NoError(t, err)
			ba, err := impedance.Match(recs[j], recs[i])
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s-%s must equal %s-%s exactly",
				recs[i].Symbol, recs[j].Symbol, recs[j].Symbol, recs[i].Symbol)
		}
	}
}

// TestMatch_Reflexive verifies R==1 for every element matched against
// itself, and that R stays within (0,1] across all pairs.
func TestMatch_Reflexive(t *testing.T) {
	tbl := element.NewTable()
	recs := tbl.Records()

	for _, rec := range recs {
		m, err := impedance.Match(rec, rec)
		require.NoError(t, err, rec.Symbol)
		assert.Equal(t, 1.0, m.R, "%s against itself is perfectly matched", rec.Symbol)
		assert.Equal(t, impedance.Metallic, m.Bond)
		assert.Equal(t, 1.0, m.ZRatio)
	}

	for i := 0; i < len(recs); i++ {
		for j := i; j < len(recs); j++ {
			m, err := impedance.Match(recs[i], recs[j])
			require.NoError(t, err)
			assert.Greater(t, m.R, 0.0)
			assert.LessOrEqual(t, m.R, 1.0)
			assert.GreaterOrEqual(t, m.ZRatio, 1.0)
		}
	}
}

// TestMatchZ_BondBoundaries pins the ratio cutoffs of the canonical
// bond-type rule.
func TestMatchZ_BondBoundaries(t *testing.T) {
	assert.Equal(t, impedance.Metallic, impedance.MatchZ(1.29, 1.0).Bond)
	assert.Equal(t, impedance.Covalent, impedance.MatchZ(1.3, 1.0).Bond, "1.3 belongs to covalent")
	assert.Equal(t, impedance.Covalent, impedance.MatchZ(3.5, 1.0).Bond, "3.5 belongs to covalent")
	assert.Equal(t, impedance.Ionic, impedance.MatchZ(3.51, 1.0).Bond)
}

// TestMatch_InvalidConstants verifies propagation of the table contract
// through the pairwise path.
func TestMatch_InvalidConstants(t *testing.T) {
	tbl := element.NewTable()
	bad := element.Record{Symbol: "Zz", Ionization: -1, Radius: 100}

	_, err := impedance.Match(bad, mustLookup(t, tbl, "Fe"))
	assert.ErrorIs(t, err, impedance.ErrInvalidConstants)

	_, err = impedance.Match(mustLookup(t, tbl, "Fe"), bad)
	assert.ErrorIs(t, err, impedance.ErrInvalidConstants)
}

// TestBondType_String verifies the lowercase bond labels.
func TestBondType_String(t *testing.T) {
	assert.Equal(t, "metallic", impedance.Metallic.String())
	assert.Equal(t, "covalent", impedance.Covalent.String())
	assert.Equal(t, "ionic", impedance.Ionic.String())
	assert.Equal(t, "unknown", impedance.BondType(9).String())
}
