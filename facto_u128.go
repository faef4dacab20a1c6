package facto

import (
	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/events"
	"github.com/takakv/facto/factoring"
	"github.com/takakv/facto/intval"
)

func downshiftCertaintyToU64(certainty certificate.Certainty[intval.U128]) certificate.Certainty[intval.U64] {
	if !certainty.RequiresCertificate() {
		return certificate.Guaranteed[intval.U64]()
	}
	sink := certificate.Wrap[intval.U64, intval.U128](certainty.Certificate(), intval.UpcastU64ToU128)
	return certificate.Certified[intval.U64](sink)
}

func upcastU64SliceToU128(xs []intval.U64) []intval.U128 {
	out := make([]intval.U128, len(xs))
	for i, x := range xs {
		out[i] = intval.UpcastU64ToU128(x)
	}
	return out
}

// IsPrimeU128 reports whether n is prime, downshifting to the faster u64
// deterministic path whenever n fits in 64 bits.
func IsPrimeU128(n intval.U128) bool {
	if v, ok := intval.TryDowncastU128(n); ok {
		return IsPrimeU64(v)
	}
	return factoring.CertifiedPrimeCheck(n, certificate.Guaranteed[intval.U128](), u128Ctx)
}

// CertifiedPrimeCheckU128 proves or disproves n's primality, recording a
// Lucas certificate element when certainty demands one.
func CertifiedPrimeCheckU128(n intval.U128, certainty certificate.Certainty[intval.U128]) bool {
	if v, ok := intval.TryDowncastU128(n); ok {
		return CertifiedPrimeCheckU64(v, downshiftCertaintyToU64(certainty))
	}
	return factoring.CertifiedPrimeCheck(n, certainty, u128Ctx)
}

// GenerateLucasCertificateU128 proves n prime and returns the certificate
// chain backing that proof, or false if n is composite.
func GenerateLucasCertificateU128(n intval.U128) (*certificate.Certificate[intval.U128], bool) {
	c := &certificate.Certificate[intval.U128]{}
	if CertifiedPrimeCheckU128(n, certificate.Certified[intval.U128](c)) {
		return c, true
	}
	return nil, false
}

// CertifiedFactorU128 factors n, optionally certifying every prime factor
// found and reporting progress through obs.
func CertifiedFactorU128(n intval.U128, certainty certificate.Certainty[intval.U128], obs events.Observer[intval.U128]) []intval.U128 {
	if v, ok := intval.TryDowncastU128(n); ok {
		wrappedObs := events.Wrap[intval.U64, intval.U128](obs, intval.UpcastU64ToU128)
		res := CertifiedFactorU64(v, downshiftCertaintyToU64(certainty), wrappedObs)
		return upcastU64SliceToU128(res)
	}
	return factoring.CertifiedFactor(n, certainty, obs, u128Ctx)
}

// FactorEventsU128 factors n, reporting progress through obs.
func FactorEventsU128(n intval.U128, obs events.Observer[intval.U128]) []intval.U128 {
	return CertifiedFactorU128(n, certificate.Guaranteed[intval.U128](), obs)
}

// FactorU128 returns n's prime factors in ascending order.
func FactorU128(n intval.U128) []intval.U128 {
	return FactorEventsU128(n, events.Noop[intval.U128]{})
}
