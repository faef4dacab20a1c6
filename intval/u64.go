package intval

import (
	"math/bits"
	"strconv"
)

// U64 is the u64 width of the integer capability.
type U64 uint64

func NewU64(v uint64) U64 { return U64(v) }

func (U64) Zero() U64 { return 0 }
func (U64) One() U64  { return 1 }

func (a U64) Add(b U64) U64 { return a + b }
func (a U64) Sub(b U64) U64 { return a - b }
func (a U64) Mul(b U64) U64 { return a * b }
func (a U64) Quo(b U64) U64 { return a / b }
func (a U64) Rem(b U64) U64 { return a % b }

func (a U64) Cmp(b U64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a U64) Lsh(n uint) U64 { return a << n }
func (a U64) Rsh(n uint) U64 { return a >> n }

func (a U64) TrailingZeros() uint {
	if a == 0 {
		return 64
	}
	return uint(bits.TrailingZeros64(uint64(a)))
}

func (a U64) BitLen() uint { return uint(bits.Len64(uint64(a))) }

func (a U64) IsZero() bool { return a == 0 }
func (a U64) IsEven() bool { return a&1 == 0 }

// Sqrt returns floor(sqrt(a)) using Newton's method, matching
// original_source/src/util.rs's p_integer_square_root termination rule:
// iterate while the next estimate keeps decreasing.
func (a U64) Sqrt() U64 {
	if a == 0 {
		return 0
	}
	result := a / 2
	if result == 0 {
		return a
	}
	next := (result + a/result) / 2
	for next < result {
		result = next
		next = (result + a/result) / 2
	}
	return result
}

func (a U64) Uint64() (uint64, bool) { return uint64(a), true }

func (a U64) String() string { return strconv.FormatUint(uint64(a), 10) }

// MulDouble returns the full 128-bit product of a and b as (hi, lo).
func (a U64) MulDouble(b U64) (hi, lo uint64) {
	return bits.Mul64(uint64(a), uint64(b))
}
