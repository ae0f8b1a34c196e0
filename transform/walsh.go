package transform

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/sbxlab/boolfun/utils"
)

// fwt is the forward Walsh-Hadamard butterfly: each pair (v0, v1) becomes
// (v0+v1, v0-v1), the subtraction using the pre-update value of v0. The base
// case reports the largest coefficient in absolute value, so the full
// recursion returns the spectral radius.
var fwt = butterfly[int]{
	combine: func(v []int, lo, hi int) {
		t := v[lo]
		v[lo] += v[hi]
		v[hi] = t - v[hi]
	},
	base: func(v []int, start, half int) int {
		return utils.Max(utils.Abs(v[start]), utils.Abs(v[start+half]))
	},
}

// invFwt undoes the forward butterfly by halving each combined value. Its
// base case skips the coefficient at global position 0: when the inverse is
// applied to an autocorrelation spectrum, the null position always equals the
// domain size and is not a meaningful extremum.
var invFwt = butterfly[int]{
	combine: func(v []int, lo, hi int) {
		t := v[lo]
		v[lo] = (v[lo] + v[hi]) / 2
		v[hi] = (t - v[hi]) / 2
	},
	base: func(v []int, start, half int) int {
		if start == 0 {
			return utils.Abs(v[1])
		}
		return utils.Max(utils.Abs(v[start]), utils.Abs(v[start+half]))
	},
}

// WalshTransform computes in place the Walsh spectrum of a boolean function
// given by its polar truth table, in O(N log N) operations, and returns the
// spectral radius. The length of v must be a power of two >= 2.
func WalshTransform(v []int) (int, error) {

	if err := checkLength(len(v)); err != nil {
		return 0, err
	}

	return fwt.run(v, 0, len(v)), nil
}

// InverseWalshTransform computes in place the inverse Walsh transform of v.
// Applied to a Walsh spectrum it reconstructs the polar truth table; applied
// to an autocorrelation spectrum it reconstructs the autocorrelation function
// and returns the maximum autocorrelation value over the nonzero positions.
// The length of v must be a power of two >= 2.
func InverseWalshTransform(v []int) (int, error) {

	if err := checkLength(len(v)); err != nil {
		return 0, err
	}

	return invFwt.run(v, 0, len(v)), nil
}

// MaxCoefficient returns the largest coefficient of v in absolute value.
// With skipFirst set the null position is ignored, which is required when v
// is an autocorrelation function, since r(0) = 2^n for every function.
func MaxCoefficient(v []int, skipFirst bool) (max int) {

	start := 0
	if skipFirst {
		start = 1
	}

	for _, x := range v[start:] {
		max = utils.Max(max, utils.Abs(x))
	}

	return
}

// NonlinearityFromRadius returns the nonlinearity of an nvar-variable
// function with the given spectral radius, (2^nvar - sprad) / 2.
func NonlinearityFromRadius(sprad, nvar int) int {
	return (1<<uint(nvar) - sprad) / 2
}

const boundPrec = 96

// CoveringRadiusBound returns the covering-radius upper bound on the
// nonlinearity of an nvar-variable function, floor(2^(nvar-1) - 2^(nvar/2-1)).
// For odd nvar the second term is irrational, hence the computation in
// arbitrary-precision floats.
func CoveringRadiusBound(nvar int) int {

	two := new(big.Float).SetPrec(boundPrec).SetInt64(2)
	exponent := new(big.Float).SetPrec(boundPrec).SetFloat64(float64(nvar)/2 - 1)

	bound := new(big.Float).SetPrec(boundPrec).SetInt64(1 << uint(nvar-1))
	bound.Sub(bound, bigfloat.Pow(two, exponent))

	i, _ := bound.Int(nil)
	return int(i.Int64())
}
