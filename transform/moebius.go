package transform

import (
	"math/bits"
)

// fmtButterfly is the Moebius butterfly: the upper half is XORed with the lower half,
// the lower half is left unchanged. The base case reports the Hamming weight
// of the global input index of the largest position holding a nonzero
// coefficient, preferring the higher position when both are set.
var fmtButterfly = butterfly[bool]{
	combine: func(v []bool, lo, hi int) {
		v[hi] = v[lo] != v[hi]
	},
	base: func(v []bool, start, half int) int {
		switch {
		case v[start+half]:
			return bits.OnesCount(uint(start + half))
		case v[start]:
			return bits.OnesCount(uint(start))
		default:
			return 0
		}
	},
}

// MoebiusTransform computes in place the algebraic normal form coefficients
// of a boolean function given by its truth table, in O(N log N) operations.
// The length of v must be a power of two >= 2.
//
// The returned value is a sub-degree accumulated by the recursion. It is a
// by-product of the butterfly and not the algebraic degree of the function;
// use AlgebraicDegreeFromANF on the transformed coefficients for that.
func MoebiusTransform(v []bool) (int, error) {

	if err := checkLength(len(v)); err != nil {
		return 0, err
	}

	return fmtButterfly.run(v, 0, len(v)), nil
}

// InputsByWeight groups the input indices of an nvar-variable function by
// Hamming weight: row w-1 lists, in increasing order, the indices whose
// binary expansion has exactly w ones. The zero input is in no row.
func InputsByWeight(nvar int) [][]int {

	byWeight := make([][]int, nvar)
	for i := 1; i < 1<<uint(nvar); i++ {
		w := bits.OnesCount(uint(i))
		byWeight[w-1] = append(byWeight[w-1], i)
	}

	return byWeight
}

// AlgebraicDegreeFromANF returns the algebraic degree of a function given its
// ANF coefficients and the input indices grouped by Hamming weight, scanning
// the weight classes in decreasing order. The degree is the weight of the
// largest monomial with a nonzero coefficient, or 0 for a constant function.
func AlgebraicDegreeFromANF(anf []bool, byWeight [][]int) int {

	for w := len(byWeight) - 1; w >= 0; w-- {
		for _, i := range byWeight[w] {
			if anf[i] {
				return w + 1
			}
		}
	}

	return 0
}
