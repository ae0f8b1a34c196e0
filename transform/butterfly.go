// Package transform implements the fast transforms of boolean functions (the
// Fast Walsh Transform, its inverse, and the Fast Moebius Transform) together
// with the cryptographic properties derived from them: spectral radius,
// nonlinearity, algebraic degree and autocorrelation.
//
// The transforms operate in place over caller-owned buffers and share a single
// recursive butterfly structure; see Carlet, "Boolean Functions for
// Cryptography and Error-Correcting Codes", in Crama, Hammer, "Boolean Models
// and Methods in Mathematics, Computer Science and Engineering".
package transform

import (
	"fmt"

	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/utils"
)

// butterfly is the divide-and-conquer recursion shared by the fast
// transforms: a combine step applied to mirrored positions of the lower and
// upper halves of the current subrange, followed by recursion on both halves.
// The transforms differ only in the combine step and in the scalar extracted
// at the two-element base case; the recursion aggregates base values by max.
type butterfly[T any] struct {
	combine func(v []T, lo, hi int)
	base    func(v []T, start, half int) int
}

// run applies the butterfly to v[start:start+length] in place. length must be
// a power of two >= 2; the public entry points validate it once before
// recursing.
func (b butterfly[T]) run(v []T, start, length int) int {

	half := length / 2

	for i := start; i < start+half; i++ {
		b.combine(v, i, i+half)
	}

	if half > 1 {
		return utils.Max(b.run(v, start, half), b.run(v, start+half, half))
	}

	return b.base(v, start, half)
}

// checkLength validates that n is a power of two and at least 2. The
// recursive transforms are undefined for single-point or odd-length inputs.
func checkLength(n int) error {
	if n < 2 || n&(n-1) != 0 {
		return fmt.Errorf("%w: transform length %d is not a power of two >= 2", bitvec.ErrInvalidLength, n)
	}
	return nil
}
