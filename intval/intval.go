// Package intval defines the integer capability every width (u64, u128,
// arbitrary precision) must provide so the rest of facto can be written
// once, generically, instead of once per width.
package intval

// Int is the capability a concrete integer width exposes to the generic
// algorithms in this module. T is the width's own type, so implementations
// return their own kind rather than an interface value.
//
// Equality is deliberately not part of this capability: Big wraps a
// *big.Int, and Go's == on a struct holding a pointer compares identity,
// not value, so every equality check in this module goes through Cmp
// instead of relying on a comparable constraint.
type Int[T any] interface {
	// Zero and One report the width's additive and multiplicative identity.
	Zero() T
	One() T

	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	// Quo and Rem implement truncated (toward zero) integer division; both
	// operands and the result are non-negative throughout this module.
	Quo(other T) T
	Rem(other T) T

	// Cmp returns -1, 0, or 1 as the receiver is less than, equal to, or
	// greater than other.
	Cmp(other T) int

	// Lsh and Rsh are logical shifts; Rsh never sign-extends (all widths
	// here are unsigned).
	Lsh(bits uint) T
	Rsh(bits uint) T

	// TrailingZeros returns the number of trailing zero bits, or the
	// width's bit size if the receiver is zero.
	TrailingZeros() uint
	// BitLen returns the minimal number of bits to represent the value,
	// with BitLen() == 0 for zero.
	BitLen() uint

	IsZero() bool
	IsEven() bool

	// Sqrt returns floor(sqrt(receiver)).
	Sqrt() T

	// Uint64 reports the value truncated to 64 bits, and whether the value
	// fit without truncation.
	Uint64() (v uint64, exact bool)

	String() string
}

// FromUint64 constructs a T from a uint64, used by callers that need to
// build small constants (2, 3, 5, the wheel deltas, ...) generically.
type FromUint64[T any] func(uint64) T
