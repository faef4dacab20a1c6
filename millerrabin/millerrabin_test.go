package millerrabin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

func TestU64MaybePrime(t *testing.T) {
	n := intval.U64(173)
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)
	require.Equal(t, MaybePrime, Test[intval.U64](n, intval.U64(2), field))
}

func TestU64Composite(t *testing.T) {
	n := intval.U64(53 * 17)
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)
	require.Equal(t, Composite, Test[intval.U64](n, intval.U64(2), field))
}

func TestU128MaybePrimeAndComposite(t *testing.T) {
	prime := intval.U128FromUint64(173)
	field, err := montgomery.NewU128Field(prime)
	require.NoError(t, err)
	require.Equal(t, MaybePrime, Test[intval.U128](prime, intval.U128FromUint64(2), field))

	composite := intval.U128FromUint64(53 * 17)
	field2, err := montgomery.NewU128Field(composite)
	require.NoError(t, err)
	require.Equal(t, Composite, Test[intval.U128](composite, intval.U128FromUint64(2), field2))
}

func TestIsPrimeU64Deterministic(t *testing.T) {
	for _, n := range []uint64{2, 3, 5, 101, 7919, 1000003} {
		require.True(t, isPrimeHelper(t, intval.U64(n)))
	}
	require.False(t, isPrimeHelper(t, intval.U64(9)))
	require.False(t, isPrimeHelper(t, intval.U64(561))) // Carmichael number
}

func isPrimeHelper(t *testing.T, n intval.U64) bool {
	t.Helper()
	if n.Cmp(intval.U64(2)) == 0 {
		return true
	}
	if n.IsEven() {
		return false
	}
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)
	return IsPrimeU64(n, field)
}
