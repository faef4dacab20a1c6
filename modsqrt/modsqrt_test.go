package modsqrt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/modsqrt"
	"github.com/takakv/facto/montgomery"
)

func fieldU64(t *testing.T, p uint64) montgomery.Field[intval.U64] {
	t.Helper()
	f, err := montgomery.NewU64Field(intval.U64(p))
	require.NoError(t, err)
	return f
}

func TestEulersCriterion(t *testing.T) {
	field := fieldU64(t, 7919)
	var quadRes []uint64
	for x := uint64(1); x < 7919; x++ {
		quadRes = append(quadRes, (x*x)%7919)
	}
	isResidue := make(map[uint64]bool)
	for _, v := range quadRes {
		isResidue[v] = true
	}

	for n := uint64(2); n < 7919; n++ {
		got := modsqrt.EulersCriterion(intval.U64(n), field)
		require.Equal(t, isResidue[n], got, "n=%d", n)
	}
}

func TestTonelliShanksP3Mod4(t *testing.T) {
	// 7919 % 4 == 3, exercises the fast-path branch.
	field := fieldU64(t, 7919)
	square := intval.U64(100)
	root := modsqrt.TonelliShanks(square, field)
	require.Equal(t, square, root.Mul(root).Rem(intval.U64(7919)))
}

func TestTonelliShanksP1Mod4(t *testing.T) {
	// 101 % 4 == 1, exercises the general Tonelli-Shanks loop.
	field := fieldU64(t, 101)
	for n := uint64(2); n < 101; n++ {
		square := intval.U64(n)
		if !modsqrt.EulersCriterion(square, field) {
			continue
		}
		root := modsqrt.TonelliShanks(square, field)
		got := root.Mul(root).Rem(intval.U64(101))
		require.Equal(t, square, got, "sqrt(%d) mod 101 verification failed", n)
	}
}

func TestOddPrimePowerSqrt(t *testing.T) {
	base := fieldU64(t, 3)
	root, err := modsqrt.OddPrimePowerSqrt(intval.U64(7), intval.U64(3), 9, base, montgomery.NewU64Field)
	require.NoError(t, err)

	modulus := uint64(1)
	for i := 0; i < 9; i++ {
		modulus *= 3
	}
	require.Equal(t, uint64(7), (uint64(root)*uint64(root))%modulus)
}

func TestBinaryPowerSqrt(t *testing.T) {
	for exp := uint(1); exp <= 10; exp++ {
		modulus := uint64(1) << exp
		for n := uint64(0); n < modulus; n++ {
			if !modsqrt.IsPrimePowerResidue(intval.U64(n), intval.U64(2), exp, nil) {
				continue
			}
			roots := modsqrt.BinaryPowerSqrt(intval.U64(n), exp, intval.NewU64)
			require.NotEmpty(t, roots, "n=%d exp=%d", n, exp)
			for _, r := range roots {
				got := (uint64(r) * uint64(r)) % modulus
				require.Equal(t, n, got, "root %d squared mod %d should be %d", r, modulus, n)
			}
		}
	}
}
