package transform

import (
	"github.com/sbxlab/boolfun/bf"
	"github.com/sbxlab/boolfun/bitvec"
)

// ComputeNonlinearity runs the Walsh transform on a copy of the polar table
// of f, stores the resulting spectrum, spectral radius and nonlinearity on f,
// and returns the nonlinearity.
func ComputeNonlinearity(f *bf.Function) (int, error) {

	spectrum := f.PolarTable()

	sprad, err := WalshTransform(spectrum)
	if err != nil {
		return 0, err
	}

	nlin := NonlinearityFromRadius(sprad, f.NVar())

	f.SetWalshSpectrum(spectrum)
	f.SetSpectralRadius(sprad)
	f.SetNonlinearity(nlin)

	return nlin, nil
}

// ComputeDegree runs the Moebius transform on a copy of the truth table of f,
// stores the resulting ANF coefficients and algebraic degree on f, and
// returns the degree.
func ComputeDegree(f *bf.Function) (int, error) {

	anf := f.TruthTable()

	if _, err := MoebiusTransform(anf); err != nil {
		return 0, err
	}

	deg := AlgebraicDegreeFromANF(anf, InputsByWeight(f.NVar()))

	f.SetANF(anf)
	f.SetAlgebraicDegree(deg)

	return deg, nil
}

// ComputeBalancedness checks the balancedness of the truth table of f, stores
// it on f and returns it.
func ComputeBalancedness(f *bf.Function) bool {
	balanced := bitvec.IsBalanced(f.TruthTable())
	f.SetBalanced(balanced)
	return balanced
}

// Analyze populates every property of f: Walsh spectrum, spectral radius,
// nonlinearity, ANF, algebraic degree and balancedness.
func Analyze(f *bf.Function) error {

	if _, err := ComputeNonlinearity(f); err != nil {
		return err
	}

	if _, err := ComputeDegree(f); err != nil {
		return err
	}

	ComputeBalancedness(f)

	return nil
}

// Autocorrelation returns the autocorrelation function of f and its maximum
// absolute value over the nonzero shifts. It squares the Walsh spectrum
// coefficient-wise and applies the inverse Walsh transform, computing the
// spectrum first if f does not carry one yet.
func Autocorrelation(f *bf.Function) ([]int, int, error) {

	spectrum, ok := f.WalshSpectrum()
	if !ok {
		if _, err := ComputeNonlinearity(f); err != nil {
			return nil, 0, err
		}
		spectrum, _ = f.WalshSpectrum()
	}

	for i, w := range spectrum {
		spectrum[i] = w * w
	}

	acmax, err := InverseWalshTransform(spectrum)
	if err != nil {
		return nil, 0, err
	}

	return spectrum, acmax, nil
}
