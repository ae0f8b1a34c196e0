// Package sampling implements the generation of random bytes, integers and
// bit sequences, either from the system entropy source or deterministically
// from a key.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandInt generates a random Int in [0, max-1].
func RandInt(max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(rand.Reader, max); err != nil {
		panic(err)
	}
	return
}

// RandBits reads n random bits from prng and returns them as a boolean slice.
func RandBits(prng PRNG, n int) ([]bool, error) {

	buf := make([]byte, (n+7)/8)
	if _, err := prng.Read(buf); err != nil {
		return nil, err
	}

	bits := make([]bool, n)
	for i := range bits {
		bits[i] = (buf[i>>3]>>(i&7))&1 == 1
	}

	return bits, nil
}
