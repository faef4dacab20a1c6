package numutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

func TestGcdU64Basic(t *testing.T) {
	require.Equal(t, intval.U64(6), Gcd(intval.U64(54), intval.U64(24)))
	require.Equal(t, intval.U64(1), Gcd(intval.U64(17), intval.U64(5)))
	require.Equal(t, intval.U64(5), Gcd(intval.U64(0), intval.U64(5)))
	require.Equal(t, intval.U64(5), Gcd(intval.U64(5), intval.U64(0)))
}

func TestGcdU64PseudoRandomWalk(t *testing.T) {
	u := intval.U64(15096997)
	v := intval.U64(2)
	for i := 0; i < 10000; i++ {
		u = u.Mul(u).Add(intval.U64(8713))
		v = v.Mul(v).Add(intval.U64(4891895))

		g := Gcd(u, v)
		require.True(t, g.Cmp(intval.U64(0)) > 0)
		require.Equal(t, intval.U64(0), u.Rem(g))
		require.Equal(t, intval.U64(0), v.Rem(g))
		require.Equal(t, intval.U64(1), Gcd(u.Quo(g), v.Quo(g)))
	}
}

func TestGcdBig(t *testing.T) {
	a := intval.BigFromUint64(270)
	b := intval.BigFromUint64(192)
	got := Gcd(a, b)
	require.Equal(t, "6", got.String())
}
