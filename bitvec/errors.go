package bitvec

import (
	"errors"
)

// Errors returned by the bit-sequence operations. Higher-level packages wrap
// these sentinels, so callers can test the failure class with errors.Is.
var (
	// ErrInvalidLength reports a sequence whose length is zero or not a power
	// of two where one is required.
	ErrInvalidLength = errors.New("invalid length")

	// ErrLengthMismatch reports two operands of different lengths in a binary
	// operation.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidArgument reports an out-of-range argument, such as a negative
	// value, a radix smaller than two or a length too small to hold a value.
	ErrInvalidArgument = errors.New("invalid argument")
)
