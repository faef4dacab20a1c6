package facto

import (
	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/events"
	"github.com/takakv/facto/factoring"
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/millerrabin"
	"github.com/takakv/facto/montgomery"
)

// IsPrimeU64 reports whether n is prime, using the seven-base deterministic
// Miller-Rabin witness set proven sufficient for the entire 64-bit range.
func IsPrimeU64(n intval.U64) bool {
	if n.Cmp(intval.U64(2)) < 0 {
		return false
	}
	if n.Cmp(intval.U64(2)) == 0 {
		return true
	}
	if n.IsEven() {
		return false
	}
	field, err := montgomery.NewU64Field(n)
	if err != nil {
		return false
	}
	return millerrabin.IsPrimeU64(n, field)
}

// CertifiedPrimeCheckU64 proves or disproves n's primality, recording a
// Lucas certificate element when certainty demands one.
func CertifiedPrimeCheckU64(n intval.U64, certainty certificate.Certainty[intval.U64]) bool {
	return factoring.CertifiedPrimeCheck(n, certainty, u64Ctx)
}

// GenerateLucasCertificateU64 proves n prime and returns the certificate
// chain backing that proof, or false if n is composite.
func GenerateLucasCertificateU64(n intval.U64) (*certificate.Certificate[intval.U64], bool) {
	c := &certificate.Certificate[intval.U64]{}
	if CertifiedPrimeCheckU64(n, certificate.Certified[intval.U64](c)) {
		return c, true
	}
	return nil, false
}

// CertifiedFactorU64 factors n, optionally certifying every prime factor
// found and reporting progress through obs.
func CertifiedFactorU64(n intval.U64, certainty certificate.Certainty[intval.U64], obs events.Observer[intval.U64]) []intval.U64 {
	return factoring.CertifiedFactor(n, certainty, obs, u64Ctx)
}

// FactorEventsU64 factors n, reporting progress through obs.
func FactorEventsU64(n intval.U64, obs events.Observer[intval.U64]) []intval.U64 {
	return CertifiedFactorU64(n, certificate.Guaranteed[intval.U64](), obs)
}

// FactorU64 returns n's prime factors in ascending order.
func FactorU64(n intval.U64) []intval.U64 {
	return FactorEventsU64(n, events.Noop[intval.U64]{})
}
