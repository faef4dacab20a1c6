package intval

import (
	"math/big"
	"math/bits"
)

// U128 is the u128 width of the integer capability, represented as two
// 64-bit words since Go has no native 128-bit integer type.
//
// Division, remainder, and square root are implemented by a round-trip
// through math/big: a correct, branch-free 128-by-128 division routine is
// fiddly to get right by hand, and nothing in the example pack ships one
// (see DESIGN.md) — the round-trip costs an allocation per call but every
// value involved is bounded to 128 bits either way.
type U128 struct {
	Hi, Lo uint64
}

func NewU128(hi, lo uint64) U128 { return U128{Hi: hi, Lo: lo} }

func U128FromUint64(v uint64) U128 { return U128{Lo: v} }

func (u U128) big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.Lo))
	return b
}

func u128FromBig(b *big.Int) U128 {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(b, mask64).Uint64()
	hi := new(big.Int).Rsh(b, 64)
	hi.And(hi, mask64)
	return U128{Hi: hi.Uint64(), Lo: lo}
}

// U128FromBig narrows a non-negative *big.Int known to fit in 128 bits. Used
// by callers outside this package (e.g. montgomery's setup code) that need
// the same round-trip this package uses internally for Quo/Rem/Sqrt.
func U128FromBig(b *big.Int) U128 { return u128FromBig(b) }

// BigInt widens u to a *big.Int. Used by callers outside this package that
// need arbitrary-precision arithmetic this type does not expose directly
// (e.g. Montgomery setup computing R mod n).
func (u U128) BigInt() *big.Int { return u.big() }

func (U128) Zero() U128 { return U128{} }
func (U128) One() U128  { return U128{Lo: 1} }

func (a U128) Add(b U128) U128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return U128{Hi: hi, Lo: lo}
}

func (a U128) Sub(b U128) U128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

// Mul returns the product truncated to 128 bits (wrapping, like Rust's
// u128 `*` in release mode).
func (a U128) Mul(b U128) U128 {
	hi, lo := bits.Mul64(a.Lo, b.Lo)
	hi += a.Hi*b.Lo + a.Lo*b.Hi
	return U128{Hi: hi, Lo: lo}
}

// MulDouble returns the full, untruncated 256-bit product as four words,
// most significant first. Used by Montgomery REDC over u128.
func (a U128) MulDouble(b U128) (w3, w2, w1, w0 uint64) {
	hiLo, loLo := bits.Mul64(a.Lo, b.Lo)
	hiHi, loHi := bits.Mul64(a.Hi, b.Hi)
	m1hi, m1lo := bits.Mul64(a.Hi, b.Lo)
	m2hi, m2lo := bits.Mul64(a.Lo, b.Hi)

	var carry uint64
	w1 = hiLo
	w1, carry = bits.Add64(w1, m1lo, 0)
	w2 = carry
	w1, carry = bits.Add64(w1, m2lo, 0)
	w2 += carry

	w2, carry = bits.Add64(w2, m1hi, 0)
	w3 = carry
	w2, carry = bits.Add64(w2, m2hi, 0)
	w3 += carry

	w2, carry = bits.Add64(w2, loHi, 0)
	w3 += carry
	w3 += hiHi

	w0 = loLo
	return
}

func (a U128) Quo(b U128) U128 { return u128FromBig(new(big.Int).Quo(a.big(), b.big())) }
func (a U128) Rem(b U128) U128 { return u128FromBig(new(big.Int).Rem(a.big(), b.big())) }

func (a U128) Cmp(b U128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	switch {
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	default:
		return 0
	}
}

func (a U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return a
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Hi: a.Lo << (n - 64)}
	default:
		return U128{Hi: (a.Hi << n) | (a.Lo >> (64 - n)), Lo: a.Lo << n}
	}
}

func (a U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return a
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Lo: a.Hi >> (n - 64)}
	default:
		return U128{Hi: a.Hi >> n, Lo: (a.Lo >> n) | (a.Hi << (64 - n))}
	}
}

func (a U128) TrailingZeros() uint {
	if a.Lo != 0 {
		return uint(bits.TrailingZeros64(a.Lo))
	}
	if a.Hi != 0 {
		return 64 + uint(bits.TrailingZeros64(a.Hi))
	}
	return 128
}

func (a U128) BitLen() uint {
	if a.Hi != 0 {
		return 64 + uint(bits.Len64(a.Hi))
	}
	return uint(bits.Len64(a.Lo))
}

func (a U128) IsZero() bool { return a.Hi == 0 && a.Lo == 0 }
func (a U128) IsEven() bool { return a.Lo&1 == 0 }

func (a U128) Sqrt() U128 { return u128FromBig(new(big.Int).Sqrt(a.big())) }

func (a U128) Uint64() (uint64, bool) { return a.Lo, a.Hi == 0 }

func (a U128) String() string { return a.big().String() }
