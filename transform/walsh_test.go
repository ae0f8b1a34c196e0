package transform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbxlab/boolfun/bitvec"
	"github.com/sbxlab/boolfun/utils"
	"github.com/sbxlab/boolfun/utils/sampling"
)

var testKey = []byte{0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

func testString(opname string, nvar int) string {
	return fmt.Sprintf("%s/nvar=%d", opname, nvar)
}

func TestWalshTransform(t *testing.T) {

	t.Run("Linear", func(t *testing.T) {
		// f(x0,x1) = x0 XOR x1 has a single nonzero coefficient of
		// magnitude 4 at the position selecting both variables.
		v := bitvec.ToPolar([]bool{false, true, true, false})
		sprad, err := WalshTransform(v)
		require.NoError(t, err)
		require.Equal(t, 4, sprad)
		require.Equal(t, []int{0, 0, 0, 4}, v)
		require.Equal(t, 0, NonlinearityFromRadius(sprad, 2))
	})

	t.Run("ConstantZero", func(t *testing.T) {
		v := bitvec.ToPolar(make([]bool, 8))
		sprad, err := WalshTransform(v)
		require.NoError(t, err)
		require.Equal(t, 8, sprad)
		require.Equal(t, 8, v[0], "all mass on the DC coefficient")
		require.Equal(t, 0, NonlinearityFromRadius(sprad, 3))
	})

	t.Run("Bent", func(t *testing.T) {
		// f = x0x1 XOR x2x3 is bent: flat spectrum of magnitude 4,
		// nonlinearity meeting the covering-radius bound.
		f, err := bitvec.Parse("0001000100011110")
		require.NoError(t, err)
		v := bitvec.ToPolar(f)
		sprad, err := WalshTransform(v)
		require.NoError(t, err)
		require.Equal(t, 4, sprad)
		for i := range v {
			require.Equal(t, 4, utils.Abs(v[i]))
		}
		require.Equal(t, 6, NonlinearityFromRadius(sprad, 4))
		require.Equal(t, 6, CoveringRadiusBound(4))
	})

	t.Run("InvalidLength", func(t *testing.T) {
		_, err := WalshTransform([]int{1, -1, 1})
		require.ErrorIs(t, err, bitvec.ErrInvalidLength)
		_, err = WalshTransform([]int{1})
		require.ErrorIs(t, err, bitvec.ErrInvalidLength)
		_, err = InverseWalshTransform([]int{})
		require.ErrorIs(t, err, bitvec.ErrInvalidLength)
	})
}

func TestInverseWalshTransform(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)

	for nvar := 1; nvar <= 10; nvar++ {

		t.Run(testString("RoundTrip", nvar), func(t *testing.T) {

			table, err := sampling.RandBits(prng, 1<<uint(nvar))
			require.NoError(t, err)

			polar := bitvec.ToPolar(table)
			spectrum := make([]int, len(polar))
			copy(spectrum, polar)

			_, err = WalshTransform(spectrum)
			require.NoError(t, err)

			_, err = InverseWalshTransform(spectrum)
			require.NoError(t, err)

			require.Equal(t, polar, spectrum, "inverse must undo the forward transform exactly")
		})
	}
}

func TestAutocorrelationViaInverse(t *testing.T) {

	// Squaring the spectrum of the XOR function and inverting yields the
	// autocorrelation function: r(0) = 2^n, and |r(a)| = 2^n at every shift
	// since the function is linear.
	v := []int{0, 0, 0, 16}
	acmax, err := InverseWalshTransform(v)
	require.NoError(t, err)
	require.Equal(t, []int{4, -4, -4, 4}, v)
	require.Equal(t, 4, acmax, "base case at position 0 must skip the null shift")
	require.Equal(t, 4, MaxCoefficient(v, true))
	require.Equal(t, 4, MaxCoefficient(v, false))
}

func TestMaxCoefficient(t *testing.T) {
	require.Equal(t, 8, MaxCoefficient([]int{8, -2, 3, 1}, false))
	require.Equal(t, 3, MaxCoefficient([]int{8, -2, 3, 1}, true))
	require.Equal(t, 0, MaxCoefficient([]int{5}, true))
}

func TestCoveringRadiusBound(t *testing.T) {
	require.Equal(t, 0, CoveringRadiusBound(1))
	require.Equal(t, 1, CoveringRadiusBound(2))
	require.Equal(t, 2, CoveringRadiusBound(3))
	require.Equal(t, 6, CoveringRadiusBound(4))
	require.Equal(t, 13, CoveringRadiusBound(5))
	require.Equal(t, 28, CoveringRadiusBound(6))
	require.Equal(t, 120, CoveringRadiusBound(8))
}
