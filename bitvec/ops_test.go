package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXor(t *testing.T) {

	c, err := Xor([]bool{true, false, true}, []bool{true, true, false})
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, c)

	_, err = Xor([]bool{true}, []bool{true, false})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestScalarProduct(t *testing.T) {

	p, err := ScalarProduct([]bool{true, true, false}, []bool{true, false, true})
	require.NoError(t, err)
	require.True(t, p)

	p, err = ScalarProduct([]bool{true, true, false}, []bool{true, true, true})
	require.NoError(t, err)
	require.False(t, p)

	_, err = ScalarProduct([]bool{true}, []bool{})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMatVecMul(t *testing.T) {

	// identity matrix
	id := [][]bool{
		{true, false},
		{false, true},
	}
	v := []bool{true, false}
	r, err := MatVecMul(id, v)
	require.NoError(t, err)
	require.Equal(t, v, r)

	_, err = MatVecMul([][]bool{{true}}, v)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBalancedness(t *testing.T) {

	require.Equal(t, 2, HammingWeight([]bool{false, true, true, false}))

	require.True(t, IsBalanced([]bool{false, true, true, false}))
	require.False(t, IsBalanced([]bool{false, false, false, false}))
	require.False(t, IsBalanced([]bool{true, true, true, true}))
	require.False(t, IsBalanced([]bool{true, false, true}), "odd length is never balanced")
}

func TestStructural(t *testing.T) {

	v := []bool{true, false, false, true, true}

	require.Equal(t, []bool{false, true, true, false, false}, Complement(v))
	require.Equal(t, []bool{true, true, false, false, true}, Reverse(v))
	require.Equal(t, []bool{false, false, true, true, true}, CyclicShift(v, 1))
	require.Equal(t, v, CyclicShift(CyclicShift(v, 2), -2))
}

func TestMirrorInputs(t *testing.T) {

	// f(x0,x1) = x0: table over inputs 00,10,01,11 (LSBF) is [0,1,0,1].
	// Mirroring swaps the roles of x0 and x1, giving [0,0,1,1].
	m, err := MirrorInputs([]bool{false, true, false, true}, 2)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, true, true}, m)

	// A palindromic-input function is its own mirror.
	xor := []bool{false, true, true, false}
	m, err = MirrorInputs(xor, 2)
	require.NoError(t, err)
	require.Equal(t, xor, m)

	_, err = MirrorInputs([]bool{false, true, false}, 2)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestDiffPositions(t *testing.T) {

	pos, err := DiffPositions([]bool{true, false, true}, []bool{true, true, false})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, pos)

	_, err = DiffPositions([]bool{true}, []bool{true, false})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
