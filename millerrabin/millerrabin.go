// Package millerrabin implements the Miller-Rabin compositeness witness: a
// single round can prove compositeness, never primality, so a number that
// survives every base tried is merely a probable prime.
package millerrabin

import (
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

// Result is the outcome of one Miller-Rabin round.
type Result int

const (
	// Composite means n is definitely composite.
	Composite Result = iota
	// MaybePrime means base failed to prove n composite; n is a strong
	// probable prime to this base, but may still be composite.
	MaybePrime
)

// Test runs one Miller-Rabin round of n with witness base, using field for
// the modular exponentiation. field must already be set up for modulus n;
// the caller supplies it rather than Test building one internally so that
// callers checking many bases against the same n pay REDC setup once.
func Test[T intval.Int[T]](n T, base T, field montgomery.Field[T]) Result {
	two := n.One().Add(n.One())
	if n.Cmp(two) == 0 {
		return MaybePrime
	}
	if n.IsEven() {
		return Composite
	}

	nMinusOne := n.Sub(n.One())
	s := nMinusOne.TrailingZeros()
	d := nMinusOne.Rsh(s)

	baseMont := field.ToMontgomery(base)
	if baseMont.IsZero() {
		return MaybePrime
	}

	one := field.ToMontgomeryUnchecked(n.One())
	basePower := field.Pow(baseMont, d)
	negOneMod := field.ToMontgomeryUnchecked(nMinusOne)

	if basePower.Cmp(one) == 0 {
		return MaybePrime
	}
	if basePower.Cmp(negOneMod) == 0 {
		return MaybePrime
	}

	for i := uint(1); i < s; i++ {
		basePower = field.MulMod(basePower, basePower)
		if basePower.Cmp(negOneMod) == 0 {
			return MaybePrime
		}
	}
	return Composite
}
