package montgomery

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

func TestU64FieldRejectsEvenModulus(t *testing.T) {
	_, err := NewU64Field(intval.U64(100))
	require.ErrorIs(t, err, ErrEvenModulus)
}

func TestU64FieldRoundTrip(t *testing.T) {
	for _, n := range []uint64{3, 97, 1000003, 18446744073709551557} {
		f, err := NewU64Field(intval.U64(n))
		require.NoError(t, err)
		for _, x := range []uint64{0, 1, 2, n - 1, n / 2} {
			mont := f.ToMontgomery(intval.U64(x))
			back := f.ToNormal(mont)
			require.Equal(t, x%n, uint64(back), "n=%d x=%d", n, x)
		}
	}
}

func TestU64FieldMulModMatchesBig(t *testing.T) {
	n := uint64(1000000007)
	f, err := NewU64Field(intval.U64(n))
	require.NoError(t, err)

	bn := new(big.Int).SetUint64(n)
	for _, pair := range [][2]uint64{{3, 5}, {n - 1, n - 1}, {123456789, 987654321}} {
		a, b := pair[0], pair[1]
		am := f.ToMontgomery(intval.U64(a))
		bm := f.ToMontgomery(intval.U64(b))
		prod := f.ToNormal(f.MulMod(am, bm))

		want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		want.Mod(want, bn)
		require.Equal(t, want.Uint64(), uint64(prod))
	}
}

func TestU64FieldPowMatchesBig(t *testing.T) {
	n := uint64(1000000007)
	f, err := NewU64Field(intval.U64(n))
	require.NoError(t, err)

	base, exp := uint64(12345), uint64(987654)
	bm := f.ToMontgomery(intval.U64(base))
	got := f.ToNormal(f.Pow(bm, intval.U64(exp)))

	want := new(big.Int).Exp(new(big.Int).SetUint64(base), new(big.Int).SetUint64(exp), new(big.Int).SetUint64(n))
	require.Equal(t, want.Uint64(), uint64(got))
}
