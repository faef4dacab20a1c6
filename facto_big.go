package facto

import (
	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/events"
	"github.com/takakv/facto/factoring"
	"github.com/takakv/facto/intval"
)

func downshiftCertaintyToU128(certainty certificate.Certainty[intval.Big]) certificate.Certainty[intval.U128] {
	if !certainty.RequiresCertificate() {
		return certificate.Guaranteed[intval.U128]()
	}
	sink := certificate.Wrap[intval.U128, intval.Big](certainty.Certificate(), intval.UpcastU128ToBig)
	return certificate.Certified[intval.U128](sink)
}

func upcastU128SliceToBig(xs []intval.U128) []intval.Big {
	out := make([]intval.Big, len(xs))
	for i, x := range xs {
		out[i] = intval.UpcastU128ToBig(x)
	}
	return out
}

// IsPrimeBig reports whether n is prime, downshifting to the faster u128
// and u64 paths whenever n fits.
func IsPrimeBig(n intval.Big) bool {
	if v, ok := intval.TryDowncastBigToU128(n); ok {
		return IsPrimeU128(v)
	}
	return factoring.CertifiedPrimeCheck(n, certificate.Guaranteed[intval.Big](), bigCtx)
}

// CertifiedPrimeCheckBig proves or disproves n's primality, recording a
// Lucas certificate element when certainty demands one.
func CertifiedPrimeCheckBig(n intval.Big, certainty certificate.Certainty[intval.Big]) bool {
	if v, ok := intval.TryDowncastBigToU128(n); ok {
		return CertifiedPrimeCheckU128(v, downshiftCertaintyToU128(certainty))
	}
	return factoring.CertifiedPrimeCheck(n, certainty, bigCtx)
}

// GenerateLucasCertificateBig proves n prime and returns the certificate
// chain backing that proof, or false if n is composite.
func GenerateLucasCertificateBig(n intval.Big) (*certificate.Certificate[intval.Big], bool) {
	c := &certificate.Certificate[intval.Big]{}
	if CertifiedPrimeCheckBig(n, certificate.Certified[intval.Big](c)) {
		return c, true
	}
	return nil, false
}

// CertifiedFactorBig factors n, optionally certifying every prime factor
// found and reporting progress through obs.
func CertifiedFactorBig(n intval.Big, certainty certificate.Certainty[intval.Big], obs events.Observer[intval.Big]) []intval.Big {
	if v, ok := intval.TryDowncastBigToU128(n); ok {
		wrappedObs := events.Wrap[intval.U128, intval.Big](obs, intval.UpcastU128ToBig)
		res := CertifiedFactorU128(v, downshiftCertaintyToU128(certainty), wrappedObs)
		return upcastU128SliceToBig(res)
	}
	return factoring.CertifiedFactor(n, certainty, obs, bigCtx)
}

// FactorEventsBig factors n, reporting progress through obs.
func FactorEventsBig(n intval.Big, obs events.Observer[intval.Big]) []intval.Big {
	return CertifiedFactorBig(n, certificate.Guaranteed[intval.Big](), obs)
}

// FactorBig returns n's prime factors in ascending order.
func FactorBig(n intval.Big) []intval.Big {
	return FactorEventsBig(n, events.Noop[intval.Big]{})
}
