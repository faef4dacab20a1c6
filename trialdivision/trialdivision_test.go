package trialdivision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

func TestDivideMaxUint64Bounded(t *testing.T) {
	n := intval.U64(math.MaxUint64)
	bound := intval.U64(6700417)
	result := Divide(n, bound, intval.NewU64)
	want := []intval.U64{3, 5, 17, 257, 641, 65537, 6700417}
	require.Equal(t, want, result.Factors)
	require.True(t, result.Exhaustive)
}

func TestExhaustivePrime(t *testing.T) {
	n := intval.NewU64(2147483647)
	got := Exhaustive(n, intval.NewU64)
	require.Equal(t, []intval.U64{2147483647}, got)
}

func TestDivideStopsAtBound(t *testing.T) {
	// A product of two primes both past a tiny bound: trial division gives
	// up before finding either and reports non-exhaustive.
	n := intval.NewU64(99991).Mul(intval.NewU64(99989))
	result := Divide(n, intval.NewU64(100), intval.NewU64)
	require.False(t, result.Exhaustive)
	require.Equal(t, n, result.Factors[0])
}

func TestDivideSmallComposite(t *testing.T) {
	result := Divide(intval.NewU64(60), intval.NewU64(60), intval.NewU64)
	require.Equal(t, []intval.U64{2, 2, 3, 5}, result.Factors)
	require.True(t, result.Exhaustive)
}
