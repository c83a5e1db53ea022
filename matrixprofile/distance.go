package matrixprofile

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// distanceMatrix computes the symmetric Euclidean distance matrix over the
// flattened windows. Only the upper triangle is written; the diagonal stays
// exactly 0. Identical windows yield exactly 0 — the distance is the square
// root of an exact-zero sum, never a negative-sqrt artifact.
//
// This is the dominant cost: O(n² · m·d) for n windows.
func distanceMatrix(segs [][]float64) *mat.SymDense {
	n := len(segs)
	dm := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dm.SetSym(i, j, floats.Distance(segs[i], segs[j], 2))
		}
	}

	return dm
}

// exclusionHalfWidth derives the trivial-match band half-width from the
// subsequence length: b = ceil(m/4). There is no separate knob.
func exclusionHalfWidth(m int) int { return (m + 3) / 4 }

// applyExclusionBand masks every entry with |i-j| <= half to +Inf,
// including the diagonal, so overlapping and adjacent windows can never be
// selected as nearest neighbors.
func applyExclusionBand(dm *mat.SymDense, half int) {
	n := dm.SymmetricDim()
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i; j <= i+half && j < n; j++ {
			dm.SetSym(i, j, inf)
		}
	}
}

// reduceProfile takes the row-wise minimum of the masked distance matrix.
// A fully masked row (possible when 2b+1 >= n) reduces to +Inf.
func reduceProfile(dm mat.Symmetric) []float64 {
	n := dm.SymmetricDim()
	profile := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, dm)
		profile[i] = floats.Min(row)
	}

	return profile
}
