package factoring

import (
	"github.com/rs/zerolog/log"

	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/events"
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/lucas"
	"github.com/takakv/facto/millerrabin"
	"github.com/takakv/facto/pollardrho"
	"github.com/takakv/facto/trialdivision"
)

// CertifiedFactor factors n, optionally recording a Lucas certificate for
// every prime factor found. obs is notified as factors are discovered.
func CertifiedFactor[T intval.Int[T]](n T, certainty certificate.Certainty[T], obs events.Observer[T], ctx Context[T]) []T {
	result := trialdivision.Divide(n, ctx.TrialDivisionBound(), ctx.From)
	preProcessed := result.Factors
	lastIdx := len(preProcessed) - 1

	if certainty.RequiresCertificate() {
		for _, p := range preProcessed[:lastIdx] {
			CertifiedPrimeCheck(p, certainty, ctx)
		}
		if result.Exhaustive {
			CertifiedPrimeCheck(preProcessed[lastIdx], certainty, ctx)
		}
	}

	if result.Exhaustive || CertifiedPrimeCheck(preProcessed[lastIdx], certainty, ctx) {
		return preProcessed
	}

	compositeFactor := preProcessed[lastIdx]
	primeFactors := append([]T{}, preProcessed[:lastIdx]...)
	if len(primeFactors) > 0 {
		obs.Factorized(n, primeFactors, []T{compositeFactor}, nil)
	}

	pollardLoop(compositeFactor, &primeFactors, obs, certainty, ctx)

	sortInPlace(primeFactors)
	return primeFactors
}

// pollardLoop splits composite with Pollard's rho until only primes remain,
// appending them to primeFactors. One increment counter serves every
// composite on the stack: it starts at 1, is bumped only when the search on
// the current composite fails, and a composite split off later is searched
// with the counter's current value as-is (coreutils factor instead moves to
// increment+1 for each new composite).
func pollardLoop[T intval.Int[T]](composite T, primeFactors *[]T, obs events.Observer[T], certainty certificate.Certainty[T], ctx Context[T]) {
	one := composite.One()
	two := one.Add(one)
	increment := one

	compositeFactors := []T{composite}
	for len(compositeFactors) > 0 {
		current := compositeFactors[len(compositeFactors)-1]
		field, err := ctx.NewField(current)
		if err != nil {
			panic("pollardLoop: composite factor was even; trial division should have stripped all factors of 2")
		}

		d, ok := pollardrho.Find(current, two, increment, field)
		if !ok {
			log.Debug().Str("factor", current.String()).Str("increment", increment.String()).Msg("pollard rho exhausted, retrying with new increment")
			increment = increment.Add(one)
			continue
		}
		handleFactor(current, d, obs, certainty, &compositeFactors, primeFactors, ctx)
	}
}

func handleFactor[T intval.Int[T]](currentFactor, f T, obs events.Observer[T], certainty certificate.Certainty[T], compositeFactors, primeFactors *[]T, ctx Context[T]) {
	*compositeFactors = (*compositeFactors)[:len(*compositeFactors)-1]
	otherFactor := currentFactor.Quo(f)
	obs.Factorized(currentFactor, nil, nil, []T{f, otherFactor})

	categorize := func(x T) {
		if CertifiedPrimeCheck(x, certainty, ctx) {
			obs.IsPrime(x)
			*primeFactors = append(*primeFactors, x)
		} else {
			obs.IsComposite(x)
			*compositeFactors = append(*compositeFactors, x)
		}
	}
	categorize(f)
	categorize(otherFactor)
}

// checkTwo handles the n == 2 and n even special cases that every other
// path assumes are already out of the way (Montgomery fields require an
// odd modulus). handled reports whether n's primality was fully decided.
func checkTwo[T intval.Int[T]](n T, certainty certificate.Certainty[T]) (result, handled bool) {
	if !n.IsEven() {
		return false, false
	}
	two := n.One().Add(n.One())
	if n.Cmp(two) != 0 {
		return false, true
	}
	if certainty.RequiresCertificate() {
		c := certainty.Certificate()
		if !c.Contains(n) {
			c.Push(certificate.Element[T]{N: n, Base: n.One(), UniquePrimeDivisors: []T{n.One()}})
		}
	}
	return true, true
}

// CertifiedPrimeCheck proves or disproves n's primality, recording a Lucas
// certificate element when certainty demands one. When certainty does not
// require a certificate and ctx carries a deterministic witness set for
// T's width, that witness set alone decides the answer, skipping Lucas
// certification's recursive factorization of n-1 entirely.
func CertifiedPrimeCheck[T intval.Int[T]](n T, certainty certificate.Certainty[T], ctx Context[T]) bool {
	if result, handled := checkTwo(n, certainty); handled {
		return result
	}
	if certainty.RequiresCertificate() && certainty.Certificate().Contains(n) {
		return true
	}

	if !certainty.RequiresCertificate() && ctx.DeterministicIsPrime != nil {
		field, err := ctx.NewField(n)
		if err != nil {
			panic("CertifiedPrimeCheck: n must be odd")
		}
		return ctx.DeterministicIsPrime(n, field)
	}

	preBases := smallBases(n, ctx.From)
	stillPossible, factors := delayedLucas(n, n.Sub(n.One()), certainty, preBases, ctx)
	if !stillPossible {
		return false
	}
	if factors == nil {
		return true
	}

	log.Debug().Str("n", n.String()).Msg("escalating to full miller-lucas search past the fixed pre-base range")
	return millerLucasLoop(ctx.From(21), n, certainty, factors, ctx)
}

// delayedLucas runs a handful of cheap Miller-Rabin rounds before paying
// for the full factorization of n-1 that Lucas certification needs. If one
// of preBases already settles the question outright, the expensive
// factorization of n-1 is skipped entirely.
func delayedLucas[T intval.Int[T]](n, nMinusOne T, certainty certificate.Certainty[T], preBases []T, ctx Context[T]) (stillPossible bool, undecidedFactors []T) {
	field, err := ctx.NewField(n)
	if err != nil {
		panic("delayedLucas: n must be odd")
	}

	for _, base := range preBases {
		if millerrabin.Test(n, base, field) == millerrabin.Composite {
			return false, nil
		}
	}

	factors := dedupeSorted(sortedCopy(CertifiedFactor(nMinusOne, certainty, events.Noop[T]{}, ctx)))

	for _, base := range preBases {
		switch lucas.Test(n, factors, base, field) {
		case lucas.Prime:
			recordCertified(certainty, n, base, factors)
			return true, nil
		case lucas.Composite:
			return false, nil
		}
	}
	return true, factors
}

func millerLucasLoop[T intval.Int[T]](startBase, n T, certainty certificate.Certainty[T], factors []T, ctx Context[T]) bool {
	field, err := ctx.NewField(n)
	if err != nil {
		panic("millerLucasLoop: n must be odd")
	}
	one := n.One()
	for base := startBase; ; base = base.Add(one) {
		if millerrabin.Test(n, base, field) == millerrabin.Composite {
			return false
		}
		switch lucas.Test(n, factors, base, field) {
		case lucas.Prime:
			recordCertified(certainty, n, base, factors)
			return true
		case lucas.Composite:
			return false
		}
	}
}

func recordCertified[T intval.Int[T]](certainty certificate.Certainty[T], n, base T, factors []T) {
	if !certainty.RequiresCertificate() {
		return
	}
	certainty.Certificate().Push(certificate.Element[T]{N: n, Base: base, UniquePrimeDivisors: factors})
}

func sortedCopy[T intval.Int[T]](xs []T) []T {
	out := append([]T{}, xs...)
	sortInPlace(out)
	return out
}
