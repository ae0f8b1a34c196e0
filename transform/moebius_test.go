package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/utils/sampling"
)

func TestMoebiusTransform(t *testing.T) {

	t.Run("Conjunction", func(t *testing.T) {
		// x0 AND x1 is its own ANF: the single monomial x0x1.
		v := []bool{false, false, false, true}
		_, err := MoebiusTransform(v)
		require.NoError(t, err)
		require.Equal(t, []bool{false, false, false, true}, v)
	})

	t.Run("Xor", func(t *testing.T) {
		// x0 XOR x1 has ANF coefficients exactly on the two single-variable
		// monomials.
		v := []bool{false, true, true, false}
		_, err := MoebiusTransform(v)
		require.NoError(t, err)
		require.Equal(t, []bool{false, true, true, false}, v)
	})

	t.Run("ConstantOne", func(t *testing.T) {
		// The all-true function has ANF 1: only the constant coefficient.
		v := []bool{true, true, true, true}
		_, err := MoebiusTransform(v)
		require.NoError(t, err)
		require.Equal(t, []bool{true, false, false, false}, v)
	})

	t.Run("Involution", func(t *testing.T) {
		// The Moebius transform is an involution: applying it twice gives
		// back the truth table.
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		for nvar := 1; nvar <= 8; nvar++ {
			table, err := sampling.RandBits(prng, 1<<uint(nvar))
			require.NoError(t, err)

			anf := make([]bool, len(table))
			copy(anf, table)

			_, err = MoebiusTransform(anf)
			require.NoError(t, err)
			_, err = MoebiusTransform(anf)
			require.NoError(t, err)

			require.Equal(t, table, anf, "nvar=%d", nvar)
		}
	})

	t.Run("InvalidLength", func(t *testing.T) {
		_, err := MoebiusTransform([]bool{true, false, true})
		require.ErrorIs(t, err, bitvec.ErrInvalidLength)
	})
}

func TestInputsByWeight(t *testing.T) {

	byWeight := InputsByWeight(3)
	require.Equal(t, [][]int{
		{1, 2, 4},
		{3, 5, 6},
		{7},
	}, byWeight)
}

func TestAlgebraicDegreeFromANF(t *testing.T) {

	byWeight := InputsByWeight(3)

	t.Run("ConstantZero", func(t *testing.T) {
		require.Equal(t, 0, AlgebraicDegreeFromANF(make([]bool, 8), byWeight))
	})

	t.Run("ConstantOne", func(t *testing.T) {
		anf := make([]bool, 8)
		anf[0] = true
		require.Equal(t, 0, AlgebraicDegreeFromANF(anf, byWeight), "constant coefficient does not contribute to the degree")
	})

	t.Run("TopMonomial", func(t *testing.T) {
		anf := make([]bool, 8)
		anf[7] = true // x0x1x2
		require.Equal(t, 3, AlgebraicDegreeFromANF(anf, byWeight))
	})

	t.Run("Linear", func(t *testing.T) {
		anf := make([]bool, 8)
		anf[2] = true // x1
		require.Equal(t, 1, AlgebraicDegreeFromANF(anf, byWeight))
	})
}
