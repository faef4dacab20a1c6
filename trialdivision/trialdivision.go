// Package trialdivision implements wheel-6 trial division: after stripping
// factors of 2, 3, and 5, only candidates congruent to 1 or 5 mod 6 can be
// prime, so the search steps through those residues only.
package trialdivision

import "github.com/takakv/facto/intval"

var preComputedPrimes = []uint64{2, 3, 5}
var wheelDeltas = []uint64{1, 5}

const wheelIncrement = 6

// Result is the outcome of a bounded trial division pass.
type Result[T intval.Int[T]] struct {
	// Factors holds every factor found, in ascending order. If Exhaustive
	// is false the last element is the cofactor left unfactored when the
	// search bound was reached, and may itself be composite; otherwise
	// every element is prime.
	Factors []T
	// Exhaustive reports whether n was fully factored: either the
	// cofactor reached 1, or the search reached sqrt(cofactor) without
	// finding a further factor (meaning the cofactor itself is prime).
	Exhaustive bool
}

// Divide returns the factors of n found by trial division up to
// inclusiveBound, plus whether the division was exhaustive (n was fully
// factored without needing to search past inclusiveBound). The final
// element of Factors may be composite when Exhaustive is false.
func Divide[T intval.Int[T]](n T, inclusiveBound T, from intval.FromUint64[T]) Result[T] {
	var factors []T
	zero := n.Zero()

	for _, p64 := range preComputedPrimes {
		p := from(p64)
		for n.Rem(p).Cmp(zero) == 0 {
			factors = append(factors, p)
			n = n.Quo(p)
		}
	}

	maxPossibleFactor := n.Sqrt()
	currentFactor := from(wheelIncrement)
	increment := from(wheelIncrement)
	one := n.One()

	for {
		changed := false
		for _, d64 := range wheelDeltas {
			f := currentFactor.Add(from(d64))
			for n.Rem(f).Cmp(zero) == 0 {
				factors = append(factors, f)
				n = n.Quo(f)
				changed = true
			}
		}
		if n.Cmp(one) == 0 {
			return Result[T]{Factors: factors, Exhaustive: true}
		}
		if changed {
			maxPossibleFactor = n.Sqrt()
		}
		if currentFactor.Cmp(maxPossibleFactor) > 0 {
			factors = append(factors, n)
			return Result[T]{Factors: factors, Exhaustive: true}
		}
		if currentFactor.Cmp(inclusiveBound) > 0 {
			factors = append(factors, n)
			return Result[T]{Factors: factors, Exhaustive: false}
		}
		currentFactor = currentFactor.Add(increment)
	}
}

// Exhaustive runs trial division up to sqrt(n), guaranteeing a complete
// factorization no matter how long it takes.
func Exhaustive[T intval.Int[T]](n T, from intval.FromUint64[T]) []T {
	return Divide(n, n, from).Factors
}
