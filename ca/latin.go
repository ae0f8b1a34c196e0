package ca

import (
	"fmt"

	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/sbox"
)

// LatinSquare builds the square matrix generated by the CA. Starting from
// every configuration of 2*(diameter-1) cells, the CA is evolved one step
// down to diameter-1 cells; the two halves of the initial configuration index
// the row and the column, and the final configuration gives the entry. The
// symbols range over {1, ..., 2^(diameter-1)}, and the matrix is a Latin
// square whenever the local rule is bipermutive.
func (c *CA) LatinSquare() ([][]int, error) {

	if c.diameter < 2 {
		return nil, fmt.Errorf("%w: diameter %d leaves no block to index the square", bitvec.ErrInvalidArgument, c.diameter)
	}

	block := c.diameter - 1
	dim := 1 << uint(block)

	matrix := make([][]int, dim)
	for i := range matrix {
		matrix[i] = make([]int, dim)
	}

	conf := make([]bool, 2*block)

	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {

			// first half of the configuration encodes the row, second the column
			for j := 0; j < block; j++ {
				conf[j] = row>>uint(j)&1 == 1
				conf[block+j] = col>>uint(j)&1 == 1
			}

			c.SetState(conf)
			if err := c.Step(); err != nil {
				return nil, err
			}

			val, err := bitvec.ToUint(c.cells)
			if err != nil {
				return nil, err
			}

			// symbols are shifted to {1, ..., 2^(diameter-1)}
			matrix[row][col] = int(val) + 1
		}
	}

	return matrix, nil
}

// Orthogonal reports whether two Latin squares of the same dimension are
// orthogonal: superposing them, every ordered pair of symbols appears exactly
// once.
func Orthogonal(a, b [][]int) (bool, error) {

	if len(a) != len(b) {
		return false, fmt.Errorf("%w: squares of dimension %d and %d", bitvec.ErrLengthMismatch, len(a), len(b))
	}

	mark := make([][]bool, len(a))
	for i := range mark {
		mark[i] = make([]bool, len(a))
	}

	for i := range a {
		if len(a[i]) != len(a) || len(b[i]) != len(a) {
			return false, fmt.Errorf("%w: row %d is not of dimension %d", bitvec.ErrLengthMismatch, i, len(a))
		}
		for j := range a[i] {
			if a[i][j] < 1 || a[i][j] > len(a) || b[i][j] < 1 || b[i][j] > len(a) {
				return false, fmt.Errorf("%w: symbol out of range at (%d,%d)", bitvec.ErrInvalidArgument, i, j)
			}
			if mark[a[i][j]-1][b[i][j]-1] {
				return false, nil
			}
			mark[a[i][j]-1][b[i][j]-1] = true
		}
	}

	return true, nil
}

// SBoxFromPair builds the S-box realized by two CA rules through their Latin
// squares: input (x, y) of 2*(diameter-1) bits maps to the pair of entries of
// the two squares at row x, column y. When the squares are orthogonal the
// S-box is a bijection.
func SBoxFromPair(f, g *CA) (sbox.SBox, error) {

	if f.diameter != g.diameter {
		return nil, fmt.Errorf("%w: diameters %d and %d", bitvec.ErrLengthMismatch, f.diameter, g.diameter)
	}

	lsF, err := f.LatinSquare()
	if err != nil {
		return nil, err
	}

	lsG, err := g.LatinSquare()
	if err != nil {
		return nil, err
	}

	block := f.diameter - 1
	width := 2 * block
	rows := make([][]bool, 1<<uint(width))

	for i := range lsF {
		for j := range lsF[i] {

			out1, err := bitvec.FromUint(uint64(lsF[i][j]-1), block)
			if err != nil {
				return nil, err
			}

			out2, err := bitvec.FromUint(uint64(lsG[i][j]-1), block)
			if err != nil {
				return nil, err
			}

			// input index concatenates the row bits (low) and column bits (high)
			rows[i|j<<uint(block)] = append(out1, out2...)
		}
	}

	return sbox.NewSBox(rows)
}
