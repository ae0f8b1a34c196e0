// Package ca implements one-dimensional boolean cellular automata with
// no-boundary evolution, the Latin squares they generate when the local rule
// is bipermutive, and the S-boxes built from pairs of orthogonal Latin
// squares.
package ca

import (
	"fmt"

	"github.com/sbxlab/boolfun/bitvec"
)

// CA is a one-dimensional boolean cellular automaton. The local rule is a
// truth table in LSBF order over diameter variables; evolution uses no
// boundary conditions, so each step shrinks the cell array by diameter-1.
type CA struct {
	cells    []bool
	rule     []bool
	diameter int
}

// NewCA returns a CA of nCells cells, all false, with the given local rule.
// len(rule) must equal 2^diameter.
func NewCA(nCells int, rule []bool, diameter int) (*CA, error) {

	if diameter < 1 || diameter > 30 {
		return nil, fmt.Errorf("%w: diameter %d", bitvec.ErrInvalidArgument, diameter)
	}

	if len(rule) != 1<<uint(diameter) {
		return nil, fmt.Errorf("%w: rule table of length %d is not 2^%d", bitvec.ErrInvalidLength, len(rule), diameter)
	}

	c := &CA{
		cells:    make([]bool, nCells),
		rule:     make([]bool, len(rule)),
		diameter: diameter,
	}
	copy(c.rule, rule)

	return c, nil
}

// Diameter returns the neighborhood size of the local rule.
func (c *CA) Diameter() int {
	return c.diameter
}

// State returns a copy of the current cell array.
func (c *CA) State() []bool {
	s := make([]bool, len(c.cells))
	copy(s, c.cells)
	return s
}

// SetState replaces the cell array with a copy of cells.
func (c *CA) SetState(cells []bool) {
	c.cells = make([]bool, len(cells))
	copy(c.cells, cells)
}

// SetRule replaces the local rule. len(rule) must equal 2^diameter.
func (c *CA) SetRule(rule []bool) error {

	if len(rule) != 1<<uint(c.diameter) {
		return fmt.Errorf("%w: rule table of length %d is not 2^%d", bitvec.ErrInvalidLength, len(rule), c.diameter)
	}

	c.rule = make([]bool, len(rule))
	copy(c.rule, rule)

	return nil
}

// Step evolves the CA to its next configuration: the local rule is applied to
// each cell whose whole neighborhood (the cell and the diameter-1 cells to
// its right) lies inside the array, shrinking the state by diameter-1 cells.
func (c *CA) Step() error {

	if len(c.cells) < c.diameter {
		return fmt.Errorf("%w: %d cells cannot host a neighborhood of %d", bitvec.ErrInvalidLength, len(c.cells), c.diameter)
	}

	next := make([]bool, len(c.cells)-c.diameter+1)
	for i := range next {
		// The rule table index is the decimal encoding of the neighborhood.
		var idx uint
		for j := 0; j < c.diameter; j++ {
			if c.cells[i+j] {
				idx |= 1 << uint(j)
			}
		}
		next[i] = c.rule[idx]
	}

	c.cells = next
	return nil
}
