// Package modsqrt computes modular square roots, the residue substrate a
// self-initializing quadratic sieve needs to decide which primes belong in
// its factor base and to seed its sieving polynomial.
package modsqrt

import (
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

// EulersCriterion reports whether n is a quadratic residue modulo the odd
// prime p, i.e. whether some x satisfies x*x == n (mod p).
func EulersCriterion[T intval.Int[T]](n T, field montgomery.Field[T]) bool {
	p := field.Modulus()
	two := n.One().Add(n.One())
	if n.IsZero() || n.Cmp(n.One()) == 0 || p.Cmp(two) <= 0 {
		return true
	}

	nMont := field.ToMontgomery(n)
	exponent := p.Sub(p.One()).Rsh(1)
	result := field.ToNormal(field.Pow(nMont, exponent))
	return result.Cmp(n.One()) == 0
}

// IsPrimePowerResidue reports whether n is a quadratic residue modulo
// primeBase^exponent, where primeBase is prime (2 is handled specially,
// since Montgomery fields require an odd modulus).
func IsPrimePowerResidue[T intval.Int[T]](n, primeBase T, exponent uint, field montgomery.Field[T]) bool {
	one := n.One()
	if n.Cmp(one) <= 0 || exponent == 0 || primeBase.Cmp(one) <= 0 {
		return true
	}

	two := one.Add(one)
	four := two.Add(two)
	eight := four.Add(four)
	if primeBase.Cmp(two) == 0 {
		switch exponent {
		case 1:
			return true
		case 2:
			return n.Rem(four).Cmp(one) <= 0
		default:
			shift := (n.TrailingZeros() / 2) * 2
			reduced := n.Rsh(shift)
			return reduced.Sub(one).Rem(eight).IsZero()
		}
	}
	return EulersCriterion(n, field)
}

// TonelliShanks returns r such that r*r == square (mod field.Modulus()), or
// the field's zero value if square is not a quadratic residue. The modulus
// must be prime.
func TonelliShanks[T intval.Int[T]](square T, field montgomery.Field[T]) T {
	p := field.Modulus()
	zero := square.Zero()
	one := square.One()
	two := one.Add(one)

	if p.Cmp(one) <= 0 {
		return zero
	}
	if p.Cmp(two) == 0 {
		return square.Rem(two)
	}
	if !EulersCriterion(square, field) {
		return zero
	}

	squareMont := field.ToMontgomery(square)

	four := two.Add(two)
	if p.Rem(four).Cmp(two.Add(one)) == 0 { // p mod 4 == 3
		exponent := p.Quo(four).Add(one)
		return field.ToNormal(field.Pow(squareMont, exponent))
	}

	s := p.Sub(one).TrailingZeros()
	q := p.Sub(one).Rsh(s)

	nonResidue := two
	for nonResidue.Cmp(p) < 0 {
		if !EulersCriterion(nonResidue, field) {
			break
		}
		nonResidue = nonResidue.Add(one)
	}
	nonResidueMont := field.ToMontgomery(nonResidue)

	c := field.Pow(nonResidueMont, q)
	t := field.Pow(squareMont, q)
	r := field.Pow(squareMont, q.Rsh(1).Add(one))
	m := s

	oneMont := field.ToMontgomeryUnchecked(one)

	for t.Cmp(zero) != 0 && t.Cmp(oneMont) != 0 {
		tempT := t
		newM := uint(0)
		for i := uint(1); i < m; i++ {
			tempT = field.MulMod(tempT, tempT)
			if tempT.Cmp(oneMont) == 0 {
				newM = i
				break
			}
		}

		power := one.Lsh(m - newM - 1)
		b := field.Pow(c, power)
		bSquared := field.MulMod(b, b)

		m = newM
		c = bSquared
		t = field.MulMod(t, bSquared)
		r = field.MulMod(r, b)
	}

	if t.Cmp(oneMont) == 0 {
		return field.ToNormal(r)
	}
	return zero
}

// PrimeModSqrt is an alias for TonelliShanks, matching the name used by
// callers that only care about the prime-modulus case.
func PrimeModSqrt[T intval.Int[T]](square T, field montgomery.Field[T]) T {
	return TonelliShanks(square, field)
}

// OddPrimePowerSqrt lifts a square root modulo an odd prime up to a root
// modulo prime^exponent via Hensel lifting (Newton's method over the
// p-adic integers): r_{k+1} = r_k - f(r_k)/f'(r_k) where f(x) = x^2-square.
func OddPrimePowerSqrt[T intval.Int[T]](square, prime T, exponent uint, baseField montgomery.Field[T], newField montgomery.Factory[T]) (T, error) {
	zero := square.Zero()
	if exponent == 0 {
		return zero, nil
	}

	root := TonelliShanks(square, baseField)
	if exponent == 1 {
		return root, nil
	}

	currentPower := prime
	for k := uint(1); k < exponent; k++ {
		currentPower = currentPower.Mul(prime)
		field, err := newField(currentPower)
		if err != nil {
			return zero, err
		}

		rk := field.ToMontgomery(root)
		squareMont := field.ToMontgomery(square)
		fRk := modSub(field.MulMod(rk, rk), squareMont, field.Modulus()) // f(r_k) = r_k^2 - square

		twoMont := field.ToMontgomeryUnchecked(square.One().Add(square.One()))
		fPrimeRk := field.MulMod(rk, twoMont) // f'(r_k) = 2*r_k

		inv := modInverseOddPrimePower(fPrimeRk, prime, field)
		delta := field.MulMod(inv, fRk)
		root = field.ToNormal(modSub(rk, delta, field.Modulus()))
	}
	return root, nil
}

// modSub computes (a-b) mod n for a, b already reduced mod n, without
// relying on signed arithmetic Int[T] doesn't expose.
func modSub[T intval.Int[T]](a, b, n T) T {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return a.Add(n).Sub(b)
}

// modInverseOddPrimePower computes aMont^-1 mod field.Modulus() for a field
// built over prime^k, using Euler's theorem: the unit group of Z/p^kZ has
// order p^k - p^(k-1), so a^(that order - 1) is a's inverse whenever a is
// coprime to p, which holds here since a = 2*r_k and p is odd.
func modInverseOddPrimePower[T intval.Int[T]](aMont, prime T, field montgomery.Field[T]) T {
	modulus := field.Modulus()
	order := modulus.Sub(modulus.Quo(prime))
	exponent := order.Sub(modulus.One())
	return field.Pow(aMont, exponent)
}

// BinaryPowerSqrt returns every root r with r*r == square (mod 2^exponent),
// by extending the root set one bit at a time: given the roots mod 2^k,
// each candidate root mod 2^(k+1) is either that root or that root plus
// 2^k, kept only if it still squares correctly. square is assumed to
// already be a residue mod 2^exponent; callers check that with
// IsPrimePowerResidue(square, 2, exponent) first.
func BinaryPowerSqrt[T intval.Int[T]](square T, exponent uint, from intval.FromUint64[T]) []T {
	zero := square.Zero()
	if exponent == 0 {
		return []T{zero}
	}

	two := from(2)
	roots := []T{square.Rem(two)}
	power := two
	for k := uint(1); k < exponent; k++ {
		power = power.Mul(two)
		roundSquare := square.Rem(power)
		half := power.Quo(two)

		var next []T
		seen := make(map[string]bool)
		for _, r := range roots {
			for _, cand := range [2]T{r, wrappingAddMod(r, half, power)} {
				if cand.Mul(cand).Rem(power).Cmp(roundSquare) != 0 {
					continue
				}
				key := cand.String()
				if !seen[key] {
					seen[key] = true
					next = append(next, cand)
				}
			}
		}
		roots = next
	}
	return roots
}

func wrappingAddMod[T intval.Int[T]](a, b, modulus T) T {
	return a.Add(b).Rem(modulus)
}
