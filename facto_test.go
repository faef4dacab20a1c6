package facto

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

func TestIsPrimeU64(t *testing.T) {
	require.True(t, IsPrimeU64(intval.U64(2)))
	require.True(t, IsPrimeU64(intval.U64(97)))
	require.False(t, IsPrimeU64(intval.U64(91)))
	require.False(t, IsPrimeU64(intval.U64(1)))
}

func TestFactorU64(t *testing.T) {
	factors := FactorU64(intval.U64(360))
	require.True(t, sort.SliceIsSorted(factors, func(i, j int) bool {
		return factors[i].Cmp(factors[j]) < 0
	}))

	product := intval.U64(1)
	for _, f := range factors {
		require.True(t, IsPrimeU64(f))
		product = product.Mul(f)
	}
	require.Equal(t, intval.U64(360), product)
}

func TestGenerateLucasCertificateU64(t *testing.T) {
	cert, ok := GenerateLucasCertificateU64(intval.U64(7919))
	require.True(t, ok)
	require.True(t, cert.Contains(intval.U64(7919)))

	_, ok = GenerateLucasCertificateU64(intval.U64(7920))
	require.False(t, ok)
}

func TestFactorU128DownshiftsToU64(t *testing.T) {
	n := intval.NewU128(0, 997*991)
	factors := FactorU128(n)
	require.Len(t, factors, 2)
	require.Equal(t, intval.NewU128(0, 991), factors[0])
	require.Equal(t, intval.NewU128(0, 997), factors[1])
}

func TestFactorBigDownshiftsThroughU128(t *testing.T) {
	n := intval.NewBig(big.NewInt(997 * 991))
	factors := FactorBig(n)
	require.Len(t, factors, 2)
	require.Equal(t, int64(991), factors[0].BigInt().Int64())
	require.Equal(t, int64(997), factors[1].BigInt().Int64())
}

func TestFactorGenericDispatch(t *testing.T) {
	require.Equal(t, FactorU64(intval.U64(84)), Factor(intval.U64(84)))
	require.Equal(t, IsPrimeU64(intval.U64(97)), IsPrime(intval.U64(97)))
}
