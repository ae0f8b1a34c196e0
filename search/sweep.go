// Package search implements exhaustive and randomized searches over families
// of boolean functions: sweeps of bipermutive rule pairs checked for Latin
// square orthogonality, random sampling of balanced functions, and summary
// statistics over the cryptographic properties of the results.
package search

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/sbxlab/boolfun/bf"
	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/ca"
	"github.com/sbxlab/boolfun/transform"
)

// PairResult reports one bipermutive rule pair of a sweep: the decimal codes
// of the two rules, their nonlinearity, and whether the Latin squares they
// generate are orthogonal.
type PairResult struct {
	RuleF, RuleG                 *big.Int
	NonlinearityF, NonlinearityG int
	Orthogonal                   bool
}

// SweepBipermutivePairs enumerates the pair codes in [start, end) for rules
// of the given diameter. Each code is a configuration of 2^(diameter-1) bits
// split into the graph configurations of two bipermutive rules; the sweep
// decodes both rules, builds their Latin squares, checks orthogonality and
// computes the nonlinearity of each rule.
func SweepBipermutivePairs(diameter int, start, end *big.Int) ([]PairResult, error) {

	if diameter < 2 || diameter > 20 {
		return nil, fmt.Errorf("%w: diameter %d", bitvec.ErrInvalidArgument, diameter)
	}

	if start.Sign() < 0 || start.Cmp(end) > 0 {
		return nil, fmt.Errorf("%w: sweep range [%s, %s)", bitvec.ErrInvalidArgument, start, end)
	}

	pairBits := 1 << uint(diameter-1)
	graphBits := pairBits / 2
	nCells := 2 * (diameter - 1)

	caF, err := ca.NewCA(nCells, make([]bool, 1<<uint(diameter)), diameter)
	if err != nil {
		return nil, err
	}
	caG, err := ca.NewCA(nCells, make([]bool, 1<<uint(diameter)), diameter)
	if err != nil {
		return nil, err
	}

	var results []PairResult
	one := big.NewInt(1)

	for index := new(big.Int).Set(start); index.Cmp(end) < 0; index.Add(index, one) {

		pairconf, err := bitvec.FromBig(index, pairBits)
		if err != nil {
			return nil, fmt.Errorf("pair code %s: %w", index, err)
		}

		ruleF, err := bf.DecodeBipermutive(pairconf[:graphBits], diameter)
		if err != nil {
			return nil, err
		}
		ruleG, err := bf.DecodeBipermutive(pairconf[graphBits:], diameter)
		if err != nil {
			return nil, err
		}

		if err = caF.SetRule(ruleF); err != nil {
			return nil, err
		}
		if err = caG.SetRule(ruleG); err != nil {
			return nil, err
		}

		lsF, err := caF.LatinSquare()
		if err != nil {
			return nil, err
		}
		lsG, err := caG.LatinSquare()
		if err != nil {
			return nil, err
		}

		orth, err := ca.Orthogonal(lsF, lsG)
		if err != nil {
			return nil, err
		}

		nlinF, err := ruleNonlinearity(ruleF, diameter)
		if err != nil {
			return nil, err
		}
		nlinG, err := ruleNonlinearity(ruleG, diameter)
		if err != nil {
			return nil, err
		}

		results = append(results, PairResult{
			RuleF:         bitvec.ToBig(ruleF),
			RuleG:         bitvec.ToBig(ruleG),
			NonlinearityF: nlinF,
			NonlinearityG: nlinG,
			Orthogonal:    orth,
		})
	}

	return results, nil
}

func ruleNonlinearity(rule []bool, nvar int) (int, error) {

	f, err := bf.NewFunction(rule, nvar)
	if err != nil {
		return 0, err
	}

	return transform.ComputeNonlinearity(f)
}

// Summary aggregates the nonlinearity of the rules of the orthogonal pairs
// found by a sweep.
type Summary struct {
	Count      int // pairs examined
	Orthogonal int // pairs with orthogonal Latin squares
	Mean       float64
	Median     float64
	StdDev     float64
	Min, Max   int
}

// Summarize computes nonlinearity statistics over the orthogonal pairs of a
// sweep. It fails when the sweep found no orthogonal pair.
func Summarize(results []PairResult) (Summary, error) {

	s := Summary{Count: len(results)}

	var values stats.Float64Data
	for _, r := range results {
		if !r.Orthogonal {
			continue
		}
		s.Orthogonal++
		values = append(values, float64(r.NonlinearityF), float64(r.NonlinearityG))
	}

	if len(values) == 0 {
		return Summary{}, fmt.Errorf("%w: no orthogonal pair to summarize", bitvec.ErrInvalidArgument)
	}

	var err error
	if s.Mean, err = stats.Mean(values); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(values); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(values); err != nil {
		return Summary{}, err
	}

	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, err
	}
	s.Min, s.Max = int(min), int(max)

	return s, nil
}
