package montgomery

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

func bigU128(s string) intval.U128 {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal: " + s)
	}
	return intval.U128FromBig(b)
}

func TestU128FieldRejectsEvenModulus(t *testing.T) {
	_, err := NewU128Field(intval.U128FromUint64(100))
	require.ErrorIs(t, err, ErrEvenModulus)
}

func TestU128FieldRoundTrip(t *testing.T) {
	n := bigU128("340282366920938463463374607431768211297") // a large 128-bit prime
	f, err := NewU128Field(n)
	require.NoError(t, err)

	for _, x := range []intval.U128{intval.U128FromUint64(0), intval.U128FromUint64(1), intval.U128FromUint64(123456789)} {
		mont := f.ToMontgomery(x)
		back := f.ToNormal(mont)
		require.Equal(t, 0, back.Cmp(x), "x=%s got=%s", x.String(), back.String())
	}
}

func TestU128FieldMulModMatchesBig(t *testing.T) {
	n := bigU128("340282366920938463463374607431768211297")
	f, err := NewU128Field(n)
	require.NoError(t, err)

	nb := n.BigInt()
	a := bigU128("123456789012345678901234567890")
	b := bigU128("987654321098765432109876543210")

	am := f.ToMontgomery(a)
	bm := f.ToMontgomery(b)
	prod := f.ToNormal(f.MulMod(am, bm))

	want := new(big.Int).Mul(a.BigInt(), b.BigInt())
	want.Mod(want, nb)
	require.Equal(t, 0, want.Cmp(prod.BigInt()))
}

func TestU128FieldPowMatchesBig(t *testing.T) {
	n := bigU128("340282366920938463463374607431768211297")
	f, err := NewU128Field(n)
	require.NoError(t, err)

	base := bigU128("123456789")
	exp := bigU128("987654321")
	bm := f.ToMontgomery(base)
	got := f.ToNormal(f.Pow(bm, exp))

	want := new(big.Int).Exp(base.BigInt(), exp.BigInt(), n.BigInt())
	require.Equal(t, 0, want.Cmp(got.BigInt()))
}
