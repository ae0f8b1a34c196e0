// Package bitvec implements conversions and operations on bit sequences
// represented as boolean slices in LSBF (Least Significant Bit First) order.
// The conversion functions come in two versions, one using uint64 and the
// other using big.Int for codes larger than 64 bits.
package bitvec

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// FromUint returns the binary expansion of x in LSBF order, zero-padded to
// length bits. It returns an error wrapping ErrInvalidArgument when length
// bits cannot hold x losslessly.
func FromUint(x uint64, length int) ([]bool, error) {

	if length < 0 || bits.Len64(x) > length {
		return nil, fmt.Errorf("%w: %d bits cannot hold %d", ErrInvalidArgument, length, x)
	}

	v := make([]bool, length)
	for i := 0; x != 0; i++ {
		v[i] = x&1 == 1
		x >>= 1
	}

	return v, nil
}

// ToUint returns the value whose binary expansion in LSBF order is v. It
// returns an error wrapping ErrInvalidArgument when the value does not fit
// in 64 bits.
func ToUint(v []bool) (uint64, error) {

	var x uint64
	for i, b := range v {
		if b {
			if i > 63 {
				return 0, fmt.Errorf("%w: bit %d set, value exceeds 64 bits", ErrInvalidArgument, i)
			}
			x |= 1 << uint(i)
		}
	}

	return x, nil
}

// FromBig returns the binary expansion of x in LSBF order, zero-padded to
// length bits. It returns an error wrapping ErrInvalidArgument when x is
// negative or when length bits cannot hold x losslessly.
func FromBig(x *big.Int, length int) ([]bool, error) {

	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrInvalidArgument, x)
	}

	if x.BitLen() > length {
		return nil, fmt.Errorf("%w: %d bits cannot hold %s", ErrInvalidArgument, length, x)
	}

	v := make([]bool, length)
	for i := 0; i < x.BitLen(); i++ {
		v[i] = x.Bit(i) == 1
	}

	return v, nil
}

// ToBig returns the value whose binary expansion in LSBF order is v.
func ToBig(v []bool) *big.Int {

	x := new(big.Int)
	for i, b := range v {
		if b {
			x.SetBit(x, i, 1)
		}
	}

	return x
}

// NaryFromUint returns the radix-ary expansion of x in least-significant-digit
// first order, zero-padded to length digits. It returns an error wrapping
// ErrInvalidArgument when radix < 2 or when length digits cannot hold x.
func NaryFromUint(x uint64, length, radix int) ([]int, error) {

	if radix < 2 {
		return nil, fmt.Errorf("%w: radix %d", ErrInvalidArgument, radix)
	}

	if length < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidArgument, length)
	}

	digits := make([]int, length)
	for i := 0; x != 0; i++ {
		if i == length {
			return nil, fmt.Errorf("%w: %d digits in radix %d cannot hold the value", ErrInvalidArgument, length, radix)
		}
		digits[i] = int(x % uint64(radix))
		x /= uint64(radix)
	}

	return digits, nil
}

// NaryToUint returns the value whose radix-ary expansion in
// least-significant-digit first order is digits.
func NaryToUint(digits []int, radix int) (uint64, error) {

	if radix < 2 {
		return 0, fmt.Errorf("%w: radix %d", ErrInvalidArgument, radix)
	}

	var x, pow uint64 = 0, 1
	for i, d := range digits {
		if d < 0 || d >= radix {
			return 0, fmt.Errorf("%w: digit %d at position %d out of range for radix %d", ErrInvalidArgument, d, i, radix)
		}
		x += uint64(d) * pow
		pow *= uint64(radix)
	}

	return x, nil
}

// NaryFromBig returns the radix-ary expansion of x in least-significant-digit
// first order, zero-padded to length digits.
func NaryFromBig(x *big.Int, length, radix int) ([]int, error) {

	if radix < 2 {
		return nil, fmt.Errorf("%w: radix %d", ErrInvalidArgument, radix)
	}

	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrInvalidArgument, x)
	}

	if length < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidArgument, length)
	}

	digits := make([]int, length)
	tmp := new(big.Int).Set(x)
	rem := new(big.Int)
	base := big.NewInt(int64(radix))

	for i := 0; tmp.Sign() != 0; i++ {
		if i == length {
			return nil, fmt.Errorf("%w: %d digits in radix %d cannot hold %s", ErrInvalidArgument, length, radix, x)
		}
		tmp.QuoRem(tmp, base, rem)
		digits[i] = int(rem.Int64())
	}

	return digits, nil
}

// NaryToBig returns the value whose radix-ary expansion in
// least-significant-digit first order is digits.
func NaryToBig(digits []int, radix int) (*big.Int, error) {

	if radix < 2 {
		return nil, fmt.Errorf("%w: radix %d", ErrInvalidArgument, radix)
	}

	x := new(big.Int)
	pow := big.NewInt(1)
	base := big.NewInt(int64(radix))
	tmp := new(big.Int)

	for i, d := range digits {
		if d < 0 || d >= radix {
			return nil, fmt.Errorf("%w: digit %d at position %d out of range for radix %d", ErrInvalidArgument, d, i, radix)
		}
		x.Add(x, tmp.Mul(pow, big.NewInt(int64(d))))
		pow = new(big.Int).Mul(pow, base)
	}

	return x, nil
}

// ToPolar returns the polar form of v (false -> 1, true -> -1).
func ToPolar(v []bool) []int {

	p := make([]int, len(v))
	for i, b := range v {
		if b {
			p[i] = -1
		} else {
			p[i] = 1
		}
	}

	return p
}

// FromPolar returns the binary form of the polar sequence p (1 -> false,
// everything else -> true).
func FromPolar(p []int) []bool {

	v := make([]bool, len(p))
	for i, x := range p {
		v[i] = x != 1
	}

	return v
}

// String renders v as a string of 0s and 1s, LSBF order preserved.
func String(v []bool) string {

	var sb strings.Builder
	sb.Grow(len(v))
	for _, b := range v {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Parse converts a string of 0s and 1s into a boolean slice. Any character
// other than '0' or '1' is rejected.
func Parse(s string) ([]bool, error) {

	v := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v[i] = true
		default:
			return nil, fmt.Errorf("%w: character %q at position %d", ErrInvalidArgument, s[i], i)
		}
	}

	return v, nil
}
