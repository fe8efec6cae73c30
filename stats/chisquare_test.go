package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athanor-lab/athanor/element"
	"github.com/athanor-lab/athanor/stats"
)

// TestCategoryBlockTest pins the contingency table, statistic, and
// p-value magnitude of the documented category/block association.
func TestCategoryBlockTest(t *testing.T) {
	tbl := element.NewTable()

	res, err := stats.CategoryBlockTest(tbl)
	require.NoError(t, err)

	// Rows GIVER/BRIDGE/TAKER × columns s/p/d/f over all 47 elements.
	assert.Equal(t, [][]int{
		{9, 0, 3, 1},
		{1, 7, 10, 0},
		{2, 14, 0, 0},
	}, res.Counts)

	assert.InDelta(t, 38.313677953101035, res.Statistic, 1e-9)
	assert.Equal(t, 6, res.DF, "(3-1)×(4-1)")
	assert.Greater(t, res.PValue, 0.0)
	assert.LessOrEqual(t, res.PValue, 1e-6, "association far beyond chance")
}

// TestPearson_Uniform verifies the null case: a perfectly uniform table
// carries zero statistic and p-value 1.
func TestPearson_Uniform(t *testing.T) {
	res, err := stats.Pearson([][]int{
		{10, 10},
		{10, 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Statistic)
	assert.Equal(t, 1, res.DF)
	assert.Equal(t, 1.0, res.PValue)
}

// TestPearson_KnownStatistic pins a hand-computed 2×2 case.
func TestPearson_KnownStatistic(t *testing.T) {
	res, err := stats.Pearson([][]int{
		{20, 0},
		{10, 10},
	})
	require.NoError(t, err)
	// E = [[15,5],[15,5]]; χ² = 25/15+25/5+25/15+25/5 = 13.3̅
	assert.InDelta(t, 13.333333333333334, res.Statistic, 1e-9)
	assert.Equal(t, 1, res.DF)
	assert.Less(t, res.PValue, 0.001)
}

// TestPearson_DegenerateRowsCols verifies the zero-sum degeneracy errors.
func TestPearson_DegenerateRowsCols(t *testing.T) {
	_, err := stats.Pearson([][]int{
		{0, 0},
		{5, 5},
	})
	assert.ErrorIs(t, err, stats.ErrDegenerateTable, "empty row")

	_, err = stats.Pearson([][]int{
		{5, 0},
		{5, 0},
	})
	assert.ErrorIs(t, err, stats.ErrDegenerateTable, "empty column")
}

// TestPearson_BadShape verifies rejection of malformed tables.
func TestPearson_BadShape(t *testing.T) {
	_, err := stats.Pearson(nil)
	assert.ErrorIs(t, err, stats.ErrBadTable, "nil table")

	_, err = stats.Pearson([][]int{{1, 2}})
	assert.ErrorIs(t, err, stats.ErrBadTable, "single row")

	_, err = stats.Pearson([][]int{{1}, {2}})
	assert.ErrorIs(t, err, stats.ErrBadTable, "single column")

	_, err = stats.Pearson([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, stats.ErrBadTable, "ragged rows")

	_, err = stats.Pearson([][]int{{1, -2}, {3, 4}})
	assert.ErrorIs(t, err, stats.ErrBadTable, "negative count")
}

// TestCategoryBlockTest_Deterministic verifies repeat-call stability.
func TestCategoryBlockTest_Deterministic(t *testing.T) {
	tbl := element.NewTable()

	a, err := stats.CategoryBlockTest(tbl)
	require.NoError(t, err)
	b, err := stats.CategoryBlockTest(tbl)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
