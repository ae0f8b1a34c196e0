// Package utils implements generic helper functions shared across the library.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Pointy creates a new variable holding x and returns its pointer.
func Pointy[T any](x T) *T {
	return &x
}

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MaxSlice returns the maximum value in s, or the zero value if s is empty.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	for i := range s {
		max = Max(max, s[i])
	}
	return
}

// EqualSlice checks the equality between two slices.
func EqualSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RotateSlice returns a new slice corresponding to s rotated by k positions to the left.
func RotateSlice[V any](s []V, k int) []V {
	ret := make([]V, len(s))
	RotateSliceAllocFree(s, k, ret)
	return ret
}

// RotateSliceAllocFree rotates slice s by k positions to the left and writes the result in sout
// without allocating new memory. s and sout may be the same slice.
func RotateSliceAllocFree[V any](s []V, k int, sout []V) {

	if len(s) != len(sout) {
		panic("cannot RotateSliceAllocFree: s and sout of different lengths")
	}

	if len(s) == 0 {
		return
	}

	r := k % len(s)
	if r < 0 {
		r = r + len(s)
	}

	if r == 0 {
		copy(sout, s)
		return
	}

	tmp := make([]V, r)
	copy(tmp, s[:r])
	copy(sout[:len(s)-r], s[r:])
	copy(sout[len(s)-r:], tmp)
}
