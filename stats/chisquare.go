package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/athanor-lab/athanor/element"
	"github.com/athanor-lab/athanor/impedance"
)

// CategoryBlockTest builds the (impedance Category) × (orbital Block)
// contingency table over the full element table and runs a Pearson
// chi-square test of association on it.
//
// Rows are GIVER/BRIDGE/TAKER, columns are s/p/d/f, both in their
// canonical order. With the built-in table every row and column is
// populated; a custom table that empties one surfaces ErrDegenerateTable.
//
// Complexity: O(n + r·c).
func CategoryBlockTest(tbl *element.Table) (ChiSquareResult, error) {
	const (
		rows = int(impedance.Taker) + 1
		cols = int(element.BlockF) + 1
	)

	// Stage 1: count categories against blocks.
	var counts [rows][cols]int
	var rec element.Record
	for _, rec = range tbl.Records() {
		res, err := impedance.Compute(rec)
		if err != nil {
			return ChiSquareResult{}, err
		}
		counts[res.Category][rec.Block]++
	}

	// Stage 2: delegate to the generic Pearson test.
	obs := make([][]int, rows)
	var i int
	for i = 0; i < rows; i++ {
		obs[i] = counts[i][:]
	}

	return Pearson(obs)
}

// Pearson runs a chi-square test of independence on an observed
// contingency table of counts.
//
//	χ² = Σ (O−E)²/E,  E[i][j] = rowSum[i]·colSum[j]/total
//	df = (rows−1)·(cols−1)
//
// The p-value is the upper-tail probability of the statistic under the χ²
// distribution with df degrees of freedom.
//
// Errors:
//   - ErrBadTable: empty, ragged, negative counts, or fewer than two
//     rows/columns.
//   - ErrDegenerateTable: any row or column sums to zero (expected counts
//     would divide by zero).
//
// Complexity: O(r·c).
func Pearson(obs [][]int) (ChiSquareResult, error) {
	// Stage 1: shape validation.
	var r int
	r = len(obs)
	if r < 2 {
		return ChiSquareResult{}, ErrBadTable
	}
	var c int
	c = len(obs[0])
	if c < 2 {
		return ChiSquareResult{}, ErrBadTable
	}

	var (
		i, j    int
		rowSums = make([]float64, r)
		colSums = make([]float64, c)
		total   float64
	)
	for i = 0; i < r; i++ {
		if len(obs[i]) != c {
			return ChiSquareResult{}, ErrBadTable
		}
		for j = 0; j < c; j++ {
			if obs[i][j] < 0 {
				return ChiSquareResult{}, ErrBadTable
			}
			v := float64(obs[i][j])
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}

	// Stage 2: degeneracy — an empty row or column has zero expectation.
	for i = 0; i < r; i++ {
		if rowSums[i] == 0 {
			return ChiSquareResult{}, ErrDegenerateTable
		}
	}
	for j = 0; j < c; j++ {
		if colSums[j] == 0 {
			return ChiSquareResult{}, ErrDegenerateTable
		}
	}

	// Stage 3: the statistic.
	var (
		stat     float64
		expected float64
		diff     float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			expected = rowSums[i] * colSums[j] / total
			diff = float64(obs[i][j]) - expected
			stat += diff * diff / expected
		}
	}

	// Stage 4: upper-tail p-value from the χ² distribution.
	var df int
	df = (r - 1) * (c - 1)
	dist := distuv.ChiSquared{K: float64(df)}

	counts := make([][]int, r)
	for i = 0; i < r; i++ {
		counts[i] = append([]int(nil), obs[i]...)
	}

	return ChiSquareResult{
		Statistic: stat,
		DF:        df,
		PValue:    dist.Survival(stat),
		Counts:    counts,
	}, nil
}
