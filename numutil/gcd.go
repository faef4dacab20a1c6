// Package numutil collects small generic number-theory helpers shared by
// the factoring and primality packages.
package numutil

import "github.com/takakv/facto/intval"

// Gcd returns the greatest common divisor of u and v using the binary GCD
// algorithm (Stein's algorithm): set aside the common power of two, make
// both values odd, repeatedly replace the larger of the two odd values with
// their difference stripped of its factors of two, and finally multiply
// the common power of two back in. Written iteratively; the original recurses, but the
// recursion is tail-only and Go has no guaranteed tail-call elimination.
func Gcd[T intval.Int[T]](u, v T) T {
	if u.IsZero() {
		return v
	}
	if v.IsZero() {
		return u
	}
	shift := u.TrailingZeros()
	if vz := v.TrailingZeros(); vz < shift {
		shift = vz
	}
	u = u.Rsh(u.TrailingZeros())
	v = v.Rsh(v.TrailingZeros())
	for {
		if u.Cmp(v) == 0 {
			return u.Lsh(shift)
		}
		if v.Cmp(u) > 0 {
			u, v = v, u
		}
		diff := u.Sub(v)
		u = diff.Rsh(diff.TrailingZeros())
	}
}
