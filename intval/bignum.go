package intval

import "math/big"

// Big is the arbitrary-precision width of the integer capability. It wraps
// *big.Int with value semantics: every operation returns a fresh Big and
// never mutates the receiver, matching the behavior of U64 and U128.
type Big struct {
	v *big.Int
}

func NewBig(v *big.Int) Big { return Big{v: new(big.Int).Set(v)} }

func BigFromUint64(v uint64) Big { return Big{v: new(big.Int).SetUint64(v)} }

func BigFromInt64(v int64) Big { return Big{v: big.NewInt(v)} }

// BigInt returns the underlying *big.Int. Callers must not mutate it.
func (a Big) BigInt() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

func (Big) Zero() Big { return Big{v: new(big.Int)} }
func (Big) One() Big  { return Big{v: big.NewInt(1)} }

func (a Big) Add(b Big) Big { return Big{v: new(big.Int).Add(a.BigInt(), b.BigInt())} }
func (a Big) Sub(b Big) Big { return Big{v: new(big.Int).Sub(a.BigInt(), b.BigInt())} }
func (a Big) Mul(b Big) Big { return Big{v: new(big.Int).Mul(a.BigInt(), b.BigInt())} }
func (a Big) Quo(b Big) Big { return Big{v: new(big.Int).Quo(a.BigInt(), b.BigInt())} }
func (a Big) Rem(b Big) Big { return Big{v: new(big.Int).Rem(a.BigInt(), b.BigInt())} }

func (a Big) Cmp(b Big) int { return a.BigInt().Cmp(b.BigInt()) }

func (a Big) Lsh(n uint) Big { return Big{v: new(big.Int).Lsh(a.BigInt(), n)} }
func (a Big) Rsh(n uint) Big { return Big{v: new(big.Int).Rsh(a.BigInt(), n)} }

func (a Big) TrailingZeros() uint {
	bi := a.BigInt()
	if bi.Sign() == 0 {
		return uint(bi.BitLen())
	}
	return uint(bi.TrailingZeroBits())
}

func (a Big) BitLen() uint { return uint(a.BigInt().BitLen()) }

func (a Big) IsZero() bool { return a.BigInt().Sign() == 0 }
func (a Big) IsEven() bool { return a.BigInt().Bit(0) == 0 }

func (a Big) Sqrt() Big { return Big{v: new(big.Int).Sqrt(a.BigInt())} }

func (a Big) Uint64() (uint64, bool) {
	bi := a.BigInt()
	if !bi.IsUint64() {
		return 0, false
	}
	return bi.Uint64(), true
}

func (a Big) String() string { return a.BigInt().String() }
