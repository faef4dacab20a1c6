// Package lucas implements the Lucas (Pocklington-Lucas) primality
// witness: given the complete set of unique prime divisors of n-1, a base
// that survives the test proves n prime outright, not merely probably
// prime.
package lucas

import (
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

// Result is the outcome of one Lucas primality round.
type Result int

const (
	// Prime means n is definitely prime.
	Prime Result = iota
	// Composite means n is definitely composite.
	Composite
	// Unknown means base did not settle the question either way; a
	// different base may still prove or disprove n.
	Unknown
)

// Test runs the Lucas witness for n using the given base and the complete
// set of n-1's unique prime divisors. field must already be set up for
// modulus n.
func Test[T intval.Int[T]](n T, uniquePrimeDivisors []T, base T, field montgomery.Field[T]) Result {
	baseMont := field.ToMontgomeryUnchecked(base)
	one := field.ToMontgomeryUnchecked(n.One())
	nMinusOne := n.Sub(n.One())

	if field.Pow(baseMont, nMinusOne).Cmp(one) != 0 {
		return Composite
	}
	for _, factor := range uniquePrimeDivisors {
		if field.Pow(baseMont, nMinusOne.Quo(factor)).Cmp(one) == 0 {
			return Unknown
		}
	}
	return Prime
}
