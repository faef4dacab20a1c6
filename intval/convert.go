package intval

import "math/big"

// ToBigInt widens any width to a *big.Int, for callers (confcert's
// commitment/range-proof layer) that need arbitrary-precision arithmetic
// regardless of which width produced the value.
func ToBigInt[T Int[T]](x T) *big.Int {
	switch v := any(x).(type) {
	case U64:
		return new(big.Int).SetUint64(uint64(v))
	case U128:
		return v.BigInt()
	case Big:
		return v.BigInt()
	default:
		panic("intval: unsupported width")
	}
}

// TryDowncastU128 narrows a U128 to a U64 when it fits, so callers can run
// the faster u64 algorithms per spec.md §4.1 ("u128->u64 if n <= u64::MAX").
func TryDowncastU128(n U128) (U64, bool) {
	v, exact := n.Uint64()
	if !exact {
		return 0, false
	}
	return U64(v), true
}

// UpcastU64ToU128 widens a U64 to U128; this direction is always exact.
func UpcastU64ToU128(n U64) U128 { return U128FromUint64(uint64(n)) }

// TryDowncastBigToU128 narrows a Big to a U128 when it fits.
func TryDowncastBigToU128(n Big) (U128, bool) {
	bi := n.BigInt()
	if bi.Sign() < 0 || bi.BitLen() > 128 {
		return U128{}, false
	}
	return u128FromBig(bi), true
}

// TryDowncastBigToU64 narrows a Big to a U64 when it fits.
func TryDowncastBigToU64(n Big) (U64, bool) {
	v, exact := n.Uint64()
	if !exact {
		return 0, false
	}
	return U64(v), true
}

// UpcastU128ToBig widens a U128 to Big; always exact.
func UpcastU128ToBig(n U128) Big { return NewBig(n.big()) }

// UpcastU64ToBig widens a U64 to Big; always exact.
func UpcastU64ToBig(n U64) Big { return BigFromUint64(uint64(n)) }
