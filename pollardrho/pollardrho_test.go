package pollardrho

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

func TestFindFactorsComposite(t *testing.T) {
	n := intval.U64(10403) // 101 * 103
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)

	d, ok := Find[intval.U64](n, intval.U64(2), intval.U64(1), field)
	require.True(t, ok)
	require.True(t, d.Cmp(intval.U64(1)) > 0)
	require.True(t, d.Cmp(n) < 0)
	require.Equal(t, intval.U64(0), n.Rem(d))
}

func TestFindLargerSemiprime(t *testing.T) {
	n := intval.U64(4294967279).Mul(intval.U64(97)) // two primes
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)

	d, ok := Find[intval.U64](n, intval.U64(2), intval.U64(1), field)
	require.True(t, ok)
	require.Equal(t, intval.U64(0), n.Rem(d))
}
