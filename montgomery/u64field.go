package montgomery

import (
	"errors"
	"math/bits"

	"github.com/takakv/facto/intval"
)

// ErrEvenModulus is returned by the field constructors: Montgomery
// reduction requires an odd modulus since R is a power of two and must be
// coprime to N.
var ErrEvenModulus = errors.New("montgomery: modulus must be odd")

type u64Field struct {
	n      uint64
	nPrime uint64 // -n^-1 mod 2^64
	r2     uint64 // R^2 mod n, R = 2^64
}

// NewU64Field builds a Montgomery context for the odd modulus n.
func NewU64Field(n intval.U64) (Field[intval.U64], error) {
	nu := uint64(n)
	if nu&1 == 0 {
		return nil, ErrEvenModulus
	}
	f := &u64Field{n: nu, nPrime: -invModPow2U64(nu)}
	// R mod n = ((2^64 - 1) mod n + 1) mod n, avoiding an overflow when
	// computing 2^64 directly.
	rModN := (^uint64(0) % nu) + 1
	if rModN == nu {
		rModN = 0
	}
	hi, lo := bits.Mul64(rModN, rModN)
	f.r2 = mod128By64(hi, lo, nu)
	return f, nil
}

// invModPow2U64 returns n^-1 mod 2^64 for odd n via Newton-Raphson: every
// odd n satisfies n*n == 1 mod 8, giving three correct bits, and each
// iteration of x = x*(2-n*x) doubles the number of correct bits.
func invModPow2U64(n uint64) uint64 {
	x := n
	for i := 0; i < 5; i++ {
		x = x * (2 - n*x)
	}
	return x
}

func mod128By64(hi, lo, n uint64) uint64 {
	_, rem := bits.Div64(hi%n, lo, n)
	return rem
}

func (f *u64Field) Modulus() intval.U64 { return intval.U64(f.n) }

func (f *u64Field) redc(hi, lo uint64) uint64 {
	m := lo * f.nPrime
	mnHi, mnLo := bits.Mul64(m, f.n)
	_, carry := bits.Add64(lo, mnLo, 0)
	sumHi, over := bits.Add64(hi, mnHi, carry)
	result := sumHi
	if over != 0 || result >= f.n {
		result -= f.n
	}
	return result
}

func (f *u64Field) ToMontgomery(x intval.U64) intval.U64 {
	return f.ToMontgomeryUnchecked(intval.U64(uint64(x) % f.n))
}

func (f *u64Field) ToMontgomeryUnchecked(x intval.U64) intval.U64 {
	hi, lo := bits.Mul64(uint64(x), f.r2)
	return intval.U64(f.redc(hi, lo))
}

func (f *u64Field) MulMod(a, b intval.U64) intval.U64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return intval.U64(f.redc(hi, lo))
}

func (f *u64Field) MulAddMod(a, b, addend intval.U64) intval.U64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	lo2, carry := bits.Add64(lo, uint64(addend), 0)
	hi2, _ := bits.Add64(hi, 0, carry)
	return intval.U64(f.redc(hi2, lo2))
}

func (f *u64Field) Pow(base, exponent intval.U64) intval.U64 {
	result := f.ToMontgomeryUnchecked(1)
	e := uint64(exponent)
	b := base
	for e > 0 {
		if e&1 == 1 {
			result = f.MulMod(result, b)
		}
		b = f.MulMod(b, b)
		e >>= 1
	}
	return result
}

func (f *u64Field) ToNormal(x intval.U64) intval.U64 {
	return intval.U64(f.redc(0, uint64(x)))
}
