// Package bf implements the representation of boolean functions: truth table,
// decimal code, polar table, and the cryptographic properties attached to them
// once computed by the transform engine.
package bf

import (
	"fmt"
	"math/big"

	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/utils"
)

// Function represents a boolean function of nvar variables. The truth table,
// stored in LSBF order, is the canonical representation; the decimal code and
// the polar table are derived at construction and always consistent with it.
//
// The cryptographic properties (Walsh spectrum, spectral radius,
// nonlinearity, ANF, algebraic degree, balancedness) are absent until the
// corresponding computation from the transform package has been run; their
// getters report presence with a second return value.
type Function struct {
	nvar   int
	ttable []bool
	code   *big.Int
	polar  []int

	walsh    []int
	anf      []bool
	sprad    *int
	nlin     *int
	algdeg   *int
	balanced *bool
}

// NewFunction constructs a Function from its truth table in LSBF order.
// len(table) must equal 2^nvar.
func NewFunction(table []bool, nvar int) (*Function, error) {

	if nvar < 1 || nvar > 30 {
		return nil, fmt.Errorf("%w: nvar %d", bitvec.ErrInvalidArgument, nvar)
	}

	if len(table) != 1<<uint(nvar) {
		return nil, fmt.Errorf("%w: truth table of length %d is not 2^%d", bitvec.ErrInvalidLength, len(table), nvar)
	}

	ttable := make([]bool, len(table))
	copy(ttable, table)

	return &Function{
		nvar:   nvar,
		ttable: ttable,
		code:   bitvec.ToBig(ttable),
		polar:  bitvec.ToPolar(ttable),
	}, nil
}

// NewFunctionFromCode constructs a Function from the decimal code of its
// truth table. code must be non-negative and smaller than 2^(2^nvar).
func NewFunctionFromCode(code *big.Int, nvar int) (*Function, error) {

	if nvar < 1 || nvar > 30 {
		return nil, fmt.Errorf("%w: nvar %d", bitvec.ErrInvalidArgument, nvar)
	}

	ttable, err := bitvec.FromBig(code, 1<<uint(nvar))
	if err != nil {
		return nil, fmt.Errorf("cannot decode truth table: %w", err)
	}

	return &Function{
		nvar:   nvar,
		ttable: ttable,
		code:   new(big.Int).Set(code),
		polar:  bitvec.ToPolar(ttable),
	}, nil
}

// NVar returns the number of variables of the function.
func (f *Function) NVar() int {
	return f.nvar
}

// Size returns the number of inputs of the function, 2^nvar.
func (f *Function) Size() int {
	return len(f.ttable)
}

// TruthTable returns a copy of the truth table in LSBF order.
func (f *Function) TruthTable() []bool {
	t := make([]bool, len(f.ttable))
	copy(t, f.ttable)
	return t
}

// Code returns a copy of the decimal code of the truth table.
func (f *Function) Code() *big.Int {
	return new(big.Int).Set(f.code)
}

// PolarTable returns a copy of the polar form of the truth table.
func (f *Function) PolarTable() []int {
	p := make([]int, len(f.polar))
	copy(p, f.polar)
	return p
}

// WalshSpectrum returns a copy of the Walsh spectrum, if computed.
func (f *Function) WalshSpectrum() ([]int, bool) {
	if f.walsh == nil {
		return nil, false
	}
	w := make([]int, len(f.walsh))
	copy(w, f.walsh)
	return w, true
}

// ANF returns a copy of the algebraic normal form coefficients, if computed.
func (f *Function) ANF() ([]bool, bool) {
	if f.anf == nil {
		return nil, false
	}
	a := make([]bool, len(f.anf))
	copy(a, f.anf)
	return a, true
}

// SpectralRadius returns the maximum absolute Walsh coefficient, if computed.
func (f *Function) SpectralRadius() (int, bool) {
	if f.sprad == nil {
		return 0, false
	}
	return *f.sprad, true
}

// Nonlinearity returns the nonlinearity of the function, if computed.
func (f *Function) Nonlinearity() (int, bool) {
	if f.nlin == nil {
		return 0, false
	}
	return *f.nlin, true
}

// AlgebraicDegree returns the algebraic degree of the function, if computed.
func (f *Function) AlgebraicDegree() (int, bool) {
	if f.algdeg == nil {
		return 0, false
	}
	return *f.algdeg, true
}

// Balanced reports whether the function is balanced, if computed.
func (f *Function) Balanced() (bool, bool) {
	if f.balanced == nil {
		return false, false
	}
	return *f.balanced, true
}

// The setters below are reserved for the analysis routines of the transform
// and sbox packages, which populate the properties they compute. External
// callers should treat a Function as immutable after construction.

// SetWalshSpectrum stores the Walsh spectrum of the function.
func (f *Function) SetWalshSpectrum(w []int) {
	f.walsh = w
}

// SetANF stores the algebraic normal form coefficients of the function.
func (f *Function) SetANF(a []bool) {
	f.anf = a
}

// SetSpectralRadius stores the spectral radius of the function.
func (f *Function) SetSpectralRadius(sprad int) {
	f.sprad = utils.Pointy(sprad)
}

// SetNonlinearity stores the nonlinearity of the function.
func (f *Function) SetNonlinearity(nlin int) {
	f.nlin = utils.Pointy(nlin)
}

// SetAlgebraicDegree stores the algebraic degree of the function.
func (f *Function) SetAlgebraicDegree(algdeg int) {
	f.algdeg = utils.Pointy(algdeg)
}

// SetBalanced stores the balancedness of the function.
func (f *Function) SetBalanced(balanced bool) {
	f.balanced = utils.Pointy(balanced)
}
