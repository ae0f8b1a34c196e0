package search

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a 32-byte digest of a truth table, used to deduplicate
// functions across sweeps. The table length is hashed along with the packed
// bits, so tables of different lengths never collide by padding.
func Fingerprint(table []bool) [32]byte {

	packed := make([]byte, 8+(len(table)+7)/8)
	binary.LittleEndian.PutUint64(packed, uint64(len(table)))
	for i, b := range table {
		if b {
			packed[8+i/8] |= 1 << uint(i%8)
		}
	}

	hasher := blake3.New()
	hasher.Write(packed)

	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))
	return sum
}
