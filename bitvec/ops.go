package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/sbxlab/boolfun/utils"
)

// Xor returns the element-wise XOR of a and b. It returns an error wrapping
// ErrLengthMismatch when the operands have different lengths.
func Xor(a, b []bool) ([]bool, error) {

	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	c := make([]bool, len(a))
	for i := range a {
		c[i] = a[i] != b[i]
	}

	return c, nil
}

// ScalarProduct returns the inner product of a and b over GF(2), i.e. the
// XOR-accumulated AND of their entries.
func ScalarProduct(a, b []bool) (bool, error) {

	if len(a) != len(b) {
		return false, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	var p bool
	for i := range a {
		p = p != (a[i] && b[i])
	}

	return p, nil
}

// MatVecMul returns the product of a boolean matrix by a boolean vector over
// GF(2): entry i of the result is the scalar product of row i with v.
func MatVecMul(matrix [][]bool, v []bool) ([]bool, error) {

	r := make([]bool, len(matrix))

	var err error
	for i := range matrix {
		if r[i], err = ScalarProduct(matrix[i], v); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return r, nil
}

// HammingWeight returns the number of true entries in v.
func HammingWeight(v []bool) (w int) {
	for _, b := range v {
		if b {
			w++
		}
	}
	return
}

// IsBalanced reports whether v has even length and contains an equal number
// of true and false entries.
func IsBalanced(v []bool) bool {
	return len(v)%2 == 0 && HammingWeight(v) == len(v)/2
}

// Complement returns the element-wise negation of v.
func Complement(v []bool) []bool {

	c := make([]bool, len(v))
	for i, b := range v {
		c[i] = !b
	}

	return c
}

// Reverse returns v in reverse order.
func Reverse(v []bool) []bool {

	r := make([]bool, len(v))
	for i := range r {
		r[i] = v[len(v)-1-i]
	}

	return r
}

// CyclicShift returns v cyclically shifted by k positions to the left.
func CyclicShift(v []bool, k int) []bool {
	return utils.RotateSlice(v, k)
}

// MirrorInputs reindexes a truth table over nvar variables by reversing the
// binary expansion of every input index, returning the truth table of the
// function with mirrored inputs. It returns an error wrapping
// ErrInvalidLength when len(table) != 2^nvar.
func MirrorInputs(table []bool, nvar int) ([]bool, error) {

	if nvar < 1 || nvar > 62 || len(table) != 1<<uint(nvar) {
		return nil, fmt.Errorf("%w: table of length %d is not 2^%d", ErrInvalidLength, len(table), nvar)
	}

	m := make([]bool, len(table))
	for i := range table {
		j := bits.Reverse64(uint64(i)) >> (64 - uint(nvar))
		m[j] = table[i]
	}

	return m, nil
}

// DiffPositions returns the indices at which a and b differ.
func DiffPositions(a, b []bool) ([]int, error) {

	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	var pos []int
	for i := range a {
		if a[i] != b[i] {
			pos = append(pos, i)
		}
	}

	return pos, nil
}

// Equal checks the equality of a and b.
func Equal(a, b []bool) bool {
	return utils.EqualSlice(a, b)
}
