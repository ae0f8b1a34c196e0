package bf

import (
	"fmt"

	"github.com/sbxlab/boolfun/bitvec"
)

// DecodeBipermutive expands the graph configuration of a bipermutive rule of
// nvar variables into its truth table. A bipermutive rule is an XOR of the
// leftmost and rightmost variables with a generating function of the central
// nvar-2 variables; the configuration holds one bit per central input, so
// len(graph) must equal 2^(nvar-2).
func DecodeBipermutive(graph []bool, nvar int) ([]bool, error) {

	if nvar < 2 || nvar > 30 {
		return nil, fmt.Errorf("%w: nvar %d", bitvec.ErrInvalidArgument, nvar)
	}

	if len(graph) != 1<<uint(nvar-2) {
		return nil, fmt.Errorf("%w: graph configuration of length %d is not 2^%d", bitvec.ErrInvalidLength, len(graph), nvar-2)
	}

	table := make([]bool, 1<<uint(nvar))
	half := 1 << uint(nvar-1)

	for j, g := range graph {
		table[2*j] = g
		table[2*j+half+1] = g
		table[2*j+1] = !g
		table[2*j+half] = !g
	}

	return table, nil
}

// EncodeBipermutive returns the graph configuration of a bipermutive rule.
// It is the left inverse of DecodeBipermutive; calling it on a function that
// is not bipermutive produces a configuration that decodes to a different
// function.
func EncodeBipermutive(f *Function) ([]bool, error) {

	nvar := f.NVar()
	if nvar < 2 {
		return nil, fmt.Errorf("%w: nvar %d", bitvec.ErrInvalidArgument, nvar)
	}

	graph := make([]bool, 1<<uint(nvar-2))

	// Bit j of the configuration is the value of the function on the input
	// whose leftmost and rightmost coordinates are zero and whose central
	// coordinates are the binary expansion of j, i.e. input index 2*j.
	for j := range graph {
		graph[j] = f.ttable[2*j]
	}

	return graph, nil
}

// DecodeCenterPermutive expands the graph configuration of a center-permutive
// rule of nvar variables into its truth table. The rule is permutive in the
// variable at position offset; len(graph) must equal 2^(nvar-1).
func DecodeCenterPermutive(graph []bool, nvar, offset int) ([]bool, error) {

	if nvar < 1 || nvar > 30 {
		return nil, fmt.Errorf("%w: nvar %d", bitvec.ErrInvalidArgument, nvar)
	}

	if offset < 0 || offset >= nvar {
		return nil, fmt.Errorf("%w: offset %d out of range for %d variables", bitvec.ErrInvalidArgument, offset, nvar)
	}

	if len(graph) != 1<<uint(nvar-1) {
		return nil, fmt.Errorf("%w: graph configuration of length %d is not 2^%d", bitvec.ErrInvalidLength, len(graph), nvar-1)
	}

	table := make([]bool, 1<<uint(nvar))
	low := 1<<uint(offset) - 1

	for j, g := range graph {
		// Insert a 0 (resp. a 1) at position offset in the expansion of j.
		ind0 := j&low | (j &^ low << 1)
		ind1 := ind0 | 1<<uint(offset)
		table[ind0] = g
		table[ind1] = !g
	}

	return table, nil
}
