// Package sbox implements the vectorial extension of the boolean-function
// property engine: component functions of multi-output functions and the
// S-box level nonlinearity and balancedness criteria derived from them.
package sbox

import (
	"fmt"
	"math/bits"

	"github.com/sbxlab/boolfun/bf"
	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/transform"
)

// SBox is a vectorial boolean function from n input bits to m output bits,
// represented as one m-bit output row per input in {0, ..., 2^n - 1}. Rows
// are in LSBF order, like every truth table in the library.
type SBox [][]bool

// NewSBox validates rows as an S-box: a power-of-two number of rows, all of
// the same nonzero width, and returns them as an SBox. The rows are not
// copied; the caller must not mutate them afterwards.
func NewSBox(rows [][]bool) (SBox, error) {

	n := len(rows)
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d rows is not a power of two >= 2", bitvec.ErrInvalidLength, n)
	}

	m := len(rows[0])
	if m == 0 {
		return nil, fmt.Errorf("%w: zero output width", bitvec.ErrInvalidLength)
	}

	for i := range rows {
		if len(rows[i]) != m {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", bitvec.ErrLengthMismatch, i, len(rows[i]), m)
		}
	}

	return SBox(rows), nil
}

// FromValues builds an S-box from its output values given as integers, one
// per input, each expanded to an m-bit row.
func FromValues(values []uint64, m int) (SBox, error) {

	rows := make([][]bool, len(values))

	var err error
	for i, v := range values {
		if rows[i], err = bitvec.FromUint(v, m); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return NewSBox(rows)
}

// InputSize returns the number of input bits n.
func (s SBox) InputSize() int {
	return bits.Len(uint(len(s))) - 1
}

// OutputSize returns the number of output bits m.
func (s SBox) OutputSize() int {
	return len(s[0])
}

// Values returns the output rows of the S-box as integers.
func (s SBox) Values() ([]uint64, error) {

	values := make([]uint64, len(s))

	var err error
	for i := range s {
		if values[i], err = bitvec.ToUint(s[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return values, nil
}

// Component returns the truth table of the component function selected by the
// nonzero vector sel: its value at input i is the scalar product of sel with
// the output row at i. len(sel) must equal the output width of the S-box.
func (s SBox) Component(sel []bool) ([]bool, error) {

	if len(sel) != s.OutputSize() {
		return nil, fmt.Errorf("%w: selection vector of length %d, output width %d", bitvec.ErrLengthMismatch, len(sel), s.OutputSize())
	}

	table := make([]bool, len(s))

	var err error
	for i := range s {
		if table[i], err = bitvec.ScalarProduct(sel, s[i]); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// Nonlinearity returns the nonlinearity of the S-box, the minimum
// nonlinearity over the component functions of all 2^m - 1 nonzero selection
// vectors. It also reports the number of linear components, i.e. components
// with zero nonlinearity, since each one is an exact linear approximation of
// the S-box outputs.
func (s SBox) Nonlinearity() (nlin, linear int, err error) {

	n := s.InputSize()
	m := s.OutputSize()

	for c := uint64(1); c < 1<<uint(m); c++ {

		sel, err := bitvec.FromUint(c, m)
		if err != nil {
			return 0, 0, err
		}

		table, err := s.Component(sel)
		if err != nil {
			return 0, 0, err
		}

		comp, err := bf.NewFunction(table, n)
		if err != nil {
			return 0, 0, err
		}

		compNlin, err := transform.ComputeNonlinearity(comp)
		if err != nil {
			return 0, 0, err
		}

		if c == 1 || compNlin < nlin {
			nlin = compNlin
		}

		if compNlin == 0 {
			linear++
		}
	}

	return nlin, linear, nil
}

// IsBalanced reports whether every nonzero-selection component function of
// the S-box is balanced. A single unbalanced component fails the predicate.
func (s SBox) IsBalanced() (bool, error) {

	m := s.OutputSize()

	for c := uint64(1); c < 1<<uint(m); c++ {

		sel, err := bitvec.FromUint(c, m)
		if err != nil {
			return false, err
		}

		table, err := s.Component(sel)
		if err != nil {
			return false, err
		}

		if !bitvec.IsBalanced(table) {
			return false, nil
		}
	}

	return true, nil
}
