package search

import (
	"encoding/binary"
	"fmt"

	"github.com/sbxlab/boolfun/bf"
	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/transform"
	"github.com/sbxlab/boolfun/utils/sampling"
)

// RandomBalanced samples trials random balanced functions of nvar variables
// from prng and returns the one with the highest nonlinearity, fully
// analyzed. Candidates are drawn by shuffling a half-ones truth table, so
// every sample is balanced by construction.
func RandomBalanced(prng sampling.PRNG, nvar, trials int) (*bf.Function, error) {

	if nvar < 1 || nvar > 30 {
		return nil, fmt.Errorf("%w: nvar %d", bitvec.ErrInvalidArgument, nvar)
	}

	if trials < 1 {
		return nil, fmt.Errorf("%w: trials %d", bitvec.ErrInvalidArgument, trials)
	}

	size := 1 << uint(nvar)
	table := make([]bool, size)

	var best *bf.Function
	bestNlin := -1

	for trial := 0; trial < trials; trial++ {

		for i := range table {
			table[i] = i < size/2
		}

		if err := shuffle(prng, table); err != nil {
			return nil, err
		}

		f, err := bf.NewFunction(table, nvar)
		if err != nil {
			return nil, err
		}

		nlin, err := transform.ComputeNonlinearity(f)
		if err != nil {
			return nil, err
		}

		if nlin > bestNlin {
			best, bestNlin = f, nlin
		}
	}

	if err := transform.Analyze(best); err != nil {
		return nil, err
	}

	return best, nil
}

// shuffle performs a Fisher-Yates shuffle of v driven by prng.
func shuffle(prng sampling.PRNG, v []bool) error {

	buf := make([]byte, 8)

	for i := len(v) - 1; i > 0; i-- {
		if _, err := prng.Read(buf); err != nil {
			return err
		}
		j := int(binary.LittleEndian.Uint64(buf) % uint64(i+1))
		v[i], v[j] = v[j], v[i]
	}

	return nil
}
