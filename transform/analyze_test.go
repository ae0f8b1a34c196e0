package transform

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbxlab/boolfun/bf"
)

func TestAnalyzeXor(t *testing.T) {

	// f(x0,x1) = x0 XOR x1: balanced, linear, degree 1.
	f, err := bf.NewFunction([]bool{false, true, true, false}, 2)
	require.NoError(t, err)

	require.NoError(t, Analyze(f))

	bal, ok := f.Balanced()
	require.True(t, ok)
	require.True(t, bal)

	nlin, ok := f.Nonlinearity()
	require.True(t, ok)
	require.Equal(t, 0, nlin)

	deg, ok := f.AlgebraicDegree()
	require.True(t, ok)
	require.Equal(t, 1, deg)

	spectrum, ok := f.WalshSpectrum()
	require.True(t, ok)
	require.Equal(t, []int{0, 0, 0, 4}, spectrum)

	anf, ok := f.ANF()
	require.True(t, ok)
	require.Equal(t, []bool{false, true, true, false}, anf)
}

func TestAnalyzeConstantZero(t *testing.T) {

	f, err := bf.NewFunction(make([]bool, 8), 3)
	require.NoError(t, err)

	require.NoError(t, Analyze(f))

	bal, _ := f.Balanced()
	require.False(t, bal)

	sprad, _ := f.SpectralRadius()
	require.Equal(t, 8, sprad)

	nlin, _ := f.Nonlinearity()
	require.Equal(t, 0, nlin)

	deg, _ := f.AlgebraicDegree()
	require.Equal(t, 0, deg)
}

func TestAnalyzeBent(t *testing.T) {

	// f = x0x1 XOR x2x3: degree 2, nonlinearity at the covering bound,
	// unbalanced as every bent function.
	f, err := bf.NewFunctionFromCode(big.NewInt(0x7888), 4)
	require.NoError(t, err)

	require.NoError(t, Analyze(f))

	nlin, _ := f.Nonlinearity()
	require.Equal(t, CoveringRadiusBound(4), nlin)

	deg, _ := f.AlgebraicDegree()
	require.Equal(t, 2, deg)

	bal, _ := f.Balanced()
	require.False(t, bal)
}

func TestAnalyzeLeavesTablesIntact(t *testing.T) {

	table := []bool{false, true, true, false}
	f, err := bf.NewFunction(table, 2)
	require.NoError(t, err)

	require.NoError(t, Analyze(f))

	require.Equal(t, table, f.TruthTable(), "transforms must run on copies")
	require.Equal(t, []int{1, -1, -1, 1}, f.PolarTable())
}

func TestAutocorrelation(t *testing.T) {

	f, err := bf.NewFunction([]bool{false, true, true, false}, 2)
	require.NoError(t, err)

	acf, acmax, err := Autocorrelation(f)
	require.NoError(t, err)
	require.Equal(t, []int{4, -4, -4, 4}, acf)
	require.Equal(t, 4, acmax)

	// r(0) always equals the domain size
	g, err := bf.NewFunction([]bool{false, false, false, true, false, true, true, true}, 3)
	require.NoError(t, err)

	acf, _, err = Autocorrelation(g)
	require.NoError(t, err)
	require.Equal(t, 8, acf[0])
}
