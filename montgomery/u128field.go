package montgomery

import (
	"math/big"
	"math/bits"

	"github.com/takakv/facto/intval"
)

type u128Field struct {
	n      intval.U128
	nPrime intval.U128 // -n^-1 mod 2^128
	r2     intval.U128 // R^2 mod n, R = 2^128
}

// NewU128Field builds a Montgomery context for the odd modulus n.
func NewU128Field(n intval.U128) (Field[intval.U128], error) {
	if n.IsEven() {
		return nil, ErrEvenModulus
	}
	f := &u128Field{n: n, nPrime: intval.U128{}.Sub(invModPow2U128(n))}

	nb := n.BigInt()
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	rModN := new(big.Int).Mod(r, nb)
	r2 := new(big.Int).Mul(rModN, rModN)
	r2.Mod(r2, nb)
	f.r2 = intval.U128FromBig(r2)
	return f, nil
}

// invModPow2U128 returns n^-1 mod 2^128 for odd n, same Newton-Raphson
// doubling as invModPow2U64 but iterated one extra round for the wider
// modulus (3 correct bits doubling: 3,6,12,24,48,96,192 >= 128).
func invModPow2U128(n intval.U128) intval.U128 {
	x := n
	two := intval.U128{Lo: 2}
	for i := 0; i < 6; i++ {
		x = x.Mul(two.Sub(n.Mul(x)))
	}
	return x
}

// add256 adds two 256-bit values given as four words each, most significant
// first, returning the sum truncated to 256 bits and the carry out of w3
// (REDC's sum can exceed 256 bits when the modulus is above 2^127).
func add256(aw3, aw2, aw1, aw0, bw3, bw2, bw1, bw0 uint64) (w3, w2, w1, w0, carry uint64) {
	var c uint64
	w0, c = bits.Add64(aw0, bw0, 0)
	w1, c = bits.Add64(aw1, bw1, c)
	w2, c = bits.Add64(aw2, bw2, c)
	w3, carry = bits.Add64(aw3, bw3, c)
	return
}

func (f *u128Field) Modulus() intval.U128 { return f.n }

func (f *u128Field) redc(w3, w2, w1, w0 uint64) intval.U128 {
	lo := intval.U128{Hi: w1, Lo: w0}
	m := lo.Mul(f.nPrime)
	mnW3, mnW2, mnW1, mnW0 := m.MulDouble(f.n)
	sumW3, sumW2, _, _, carry := add256(w3, w2, w1, w0, mnW3, mnW2, mnW1, mnW0)
	result := intval.U128{Hi: sumW3, Lo: sumW2}
	if carry != 0 || result.Cmp(f.n) >= 0 {
		result = result.Sub(f.n)
	}
	return result
}

func (f *u128Field) ToMontgomery(x intval.U128) intval.U128 {
	return f.ToMontgomeryUnchecked(x.Rem(f.n))
}

func (f *u128Field) ToMontgomeryUnchecked(x intval.U128) intval.U128 {
	w3, w2, w1, w0 := x.MulDouble(f.r2)
	return f.redc(w3, w2, w1, w0)
}

func (f *u128Field) MulMod(a, b intval.U128) intval.U128 {
	w3, w2, w1, w0 := a.MulDouble(b)
	return f.redc(w3, w2, w1, w0)
}

func (f *u128Field) MulAddMod(a, b, addend intval.U128) intval.U128 {
	w3, w2, w1, w0 := a.MulDouble(b)
	lo0, c0 := bits.Add64(w0, addend.Lo, 0)
	lo1, c1 := bits.Add64(w1, addend.Hi, c0)
	lo2, c2 := bits.Add64(w2, 0, c1)
	hi, _ := bits.Add64(w3, 0, c2)
	return f.redc(hi, lo2, lo1, lo0)
}

func (f *u128Field) Pow(base, exponent intval.U128) intval.U128 {
	result := f.ToMontgomeryUnchecked(intval.U128{Lo: 1})
	b := base
	e := exponent
	zero := intval.U128{}
	for e.Cmp(zero) > 0 {
		if !e.IsEven() {
			result = f.MulMod(result, b)
		}
		b = f.MulMod(b, b)
		e = e.Rsh(1)
	}
	return result
}

func (f *u128Field) ToNormal(x intval.U128) intval.U128 {
	return f.redc(0, 0, x.Hi, x.Lo)
}
