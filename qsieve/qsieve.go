package qsieve

import (
	"math/big"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/modsqrt"
	"github.com/takakv/facto/montgomery"
)

// relation is one sieved value y = (x+ceilSqrt)^2 - n together with the
// parity, over the factor base, of the exponents in y's factorization.
//
// Gathering relations needs y kept as an exact, unbounded integer (the
// final step takes an exact square root of a product of several y's), so
// this package works directly in intval.Big rather than generically over
// intval.Int[T]: a u64/u128 accumulation of several squared sieve values
// would overflow long before a useful relation set closes out.
type relation struct {
	t      *big.Int // x + ceilSqrt, the value whose square is congruent to y mod n
	y      *big.Int
	vector *bitVector
}

// factorBasePrimes returns the first count odd primes p for which n is a
// quadratic residue mod p, the only primes that can appear with odd
// exponent in a smooth relation's factorization.
func factorBasePrimes(n *big.Int, count int) []uint64 {
	var primes []uint64
	candidate := uint64(3)
	for len(primes) < count {
		if isSmallPrime(candidate) {
			field, err := montgomery.NewU64Field(intval.U64(candidate))
			if err == nil {
				nModP := new(big.Int).Mod(n, big.NewInt(int64(candidate))).Uint64()
				if modsqrt.EulersCriterion(intval.U64(nModP), field) {
					primes = append(primes, candidate)
				}
			}
		}
		candidate += 2
	}
	return primes
}

func isSmallPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// trialDivideOverBase strips every factor-base prime out of y (tracking
// odd/even exponent parity in vec) and returns the unfactored remainder;
// a remainder of 1 means y is fully smooth over the base.
func trialDivideOverBase(y *big.Int, primes []uint64, vec *bitVector) *big.Int {
	remainder := new(big.Int).Set(y)
	mod := new(big.Int)
	for i, p := range primes {
		pBig := new(big.Int).SetUint64(p)
		for remainder.Sign() != 0 && mod.Mod(remainder, pBig).Sign() == 0 {
			remainder.Div(remainder, pBig)
			vec.flip(i)
		}
	}
	return remainder
}

// gatherRelations trial-divides (x+ceilSqrt)^2 - n over the factor base for
// x in [0, sieveSize), keeping every x whose value is fully smooth. This is
// a direct, unoptimized relation gatherer: the original's log-approximation
// sieve (skipping most x cheaply before trial division) is not implemented
// here, so this is only practical for a small sieveSize/factor-base pair.
// See DESIGN.md's Quadratic Sieve shipping-status decision.
func gatherRelations(n *big.Int, sieveSize int, primes []uint64) []relation {
	ceilSq := new(big.Int).Sqrt(n)
	square := new(big.Int).Mul(ceilSq, ceilSq)
	if square.Cmp(n) != 0 {
		ceilSq.Add(ceilSq, big.NewInt(1))
	}

	var relations []relation
	for i := 0; i < sieveSize; i++ {
		t := new(big.Int).Add(ceilSq, big.NewInt(int64(i)))
		y := new(big.Int).Mul(t, t)
		y.Sub(y, n)
		if y.Sign() == 0 {
			continue
		}
		vec := newBitVector(len(primes))
		remainder := trialDivideOverBase(y, primes, vec)
		if remainder.Cmp(big.NewInt(1)) == 0 {
			relations = append(relations, relation{t: t, y: new(big.Int).Mul(t, t), vector: vec})
			relations[len(relations)-1].y.Sub(relations[len(relations)-1].y, n)
		}
	}
	return relations
}

// linearCombination runs Gaussian elimination over GF(2) on the gathered
// relations' exponent-parity vectors. Each time a running combination's
// vector closes out to zero, the combination's product of y-values is an
// exact perfect square (every prime in it appears to an even power); its
// square root reduced mod n, compared against the product of t-values mod
// n, yields a congruence of squares and a candidate nontrivial factor.
func linearCombination(n *big.Int, relations []relation) (*big.Int, bool) {
	tProduct := make([]*big.Int, len(relations))
	yProduct := make([]*big.Int, len(relations))
	for i, r := range relations {
		tProduct[i] = new(big.Int).Mod(r.t, n)
		yProduct[i] = new(big.Int).Set(r.y)
	}

	size := 0
	if len(relations) > 0 {
		size = len(relations[0].vector.words) * 64
	}

	for bit := 0; bit < size; bit++ {
		hunter := -1
		for idx := range relations {
			if relations[idx].vector.trailingZeros() != bit {
				continue
			}
			if hunter == -1 {
				hunter = idx
				continue
			}
			relations[idx].vector.xorInto(relations[hunter].vector)
			tProduct[idx].Mul(tProduct[idx], tProduct[hunter])
			tProduct[idx].Mod(tProduct[idx], n)
			yProduct[idx].Mul(yProduct[idx], yProduct[hunter])

			if relations[idx].vector.isZero() {
				absY := new(big.Int).Abs(yProduct[idx])
				root := new(big.Int).Sqrt(absY)
				check := new(big.Int).Mul(root, root)
				if check.Cmp(absY) != 0 {
					continue
				}
				root.Mod(root, n)

				diff := new(big.Int).Sub(tProduct[idx], root)
				diff.Abs(diff)
				g := new(big.Int).GCD(nil, nil, diff, n)
				if g.Cmp(big.NewInt(1)) != 0 && g.Cmp(n) != 0 {
					return g, true
				}
			}
		}
	}
	return nil, false
}

// Find attempts to split n using a quadratic sieve over a factor base of
// baseSize primes and sieveSize candidate x values. It returns false if no
// relation set closed out to a usable congruence of squares within that
// bound; this is a research-grade component, not a guaranteed factorizer
// (spec.md's Non-goals exclude guaranteed subquadratic factoring).
func Find(n intval.Big, baseSize, sieveSize int) (intval.Big, bool) {
	nb := n.BigInt()
	primes := factorBasePrimes(nb, baseSize)
	relations := gatherRelations(nb, sieveSize, primes)
	g, ok := linearCombination(nb, relations)
	if !ok {
		return intval.Big{}, false
	}
	return intval.NewBig(g), true
}
