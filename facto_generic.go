package facto

import (
	"fmt"

	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/events"
	"github.com/takakv/facto/intval"
)

// Factor returns n's prime factors in ascending order. T must be one of
// the three widths this module implements: U64, U128, or Big.
func Factor[T intval.Int[T]](n T) []T {
	switch v := any(n).(type) {
	case intval.U64:
		return any(FactorU64(v)).([]T)
	case intval.U128:
		return any(FactorU128(v)).([]T)
	case intval.Big:
		return any(FactorBig(v)).([]T)
	default:
		panic(fmt.Sprintf("facto: unsupported width %T", n))
	}
}

// FactorEvents factors n, reporting progress through obs.
func FactorEvents[T intval.Int[T]](n T, obs events.Observer[T]) []T {
	switch v := any(n).(type) {
	case intval.U64:
		return any(FactorEventsU64(v, any(obs).(events.Observer[intval.U64]))).([]T)
	case intval.U128:
		return any(FactorEventsU128(v, any(obs).(events.Observer[intval.U128]))).([]T)
	case intval.Big:
		return any(FactorEventsBig(v, any(obs).(events.Observer[intval.Big]))).([]T)
	default:
		panic(fmt.Sprintf("facto: unsupported width %T", n))
	}
}

// CertifiedFactor factors n, optionally certifying every prime factor
// found and reporting progress through obs.
func CertifiedFactor[T intval.Int[T]](n T, certainty certificate.Certainty[T], obs events.Observer[T]) []T {
	switch v := any(n).(type) {
	case intval.U64:
		c := any(certainty).(certificate.Certainty[intval.U64])
		o := any(obs).(events.Observer[intval.U64])
		return any(CertifiedFactorU64(v, c, o)).([]T)
	case intval.U128:
		c := any(certainty).(certificate.Certainty[intval.U128])
		o := any(obs).(events.Observer[intval.U128])
		return any(CertifiedFactorU128(v, c, o)).([]T)
	case intval.Big:
		c := any(certainty).(certificate.Certainty[intval.Big])
		o := any(obs).(events.Observer[intval.Big])
		return any(CertifiedFactorBig(v, c, o)).([]T)
	default:
		panic(fmt.Sprintf("facto: unsupported width %T", n))
	}
}

// IsPrime reports whether n is prime.
func IsPrime[T intval.Int[T]](n T) bool {
	switch v := any(n).(type) {
	case intval.U64:
		return IsPrimeU64(v)
	case intval.U128:
		return IsPrimeU128(v)
	case intval.Big:
		return IsPrimeBig(v)
	default:
		panic(fmt.Sprintf("facto: unsupported width %T", n))
	}
}

// CertifiedPrimeCheck proves or disproves n's primality, recording a Lucas
// certificate element when certainty demands one.
func CertifiedPrimeCheck[T intval.Int[T]](n T, certainty certificate.Certainty[T]) bool {
	switch v := any(n).(type) {
	case intval.U64:
		return CertifiedPrimeCheckU64(v, any(certainty).(certificate.Certainty[intval.U64]))
	case intval.U128:
		return CertifiedPrimeCheckU128(v, any(certainty).(certificate.Certainty[intval.U128]))
	case intval.Big:
		return CertifiedPrimeCheckBig(v, any(certainty).(certificate.Certainty[intval.Big]))
	default:
		panic(fmt.Sprintf("facto: unsupported width %T", n))
	}
}

// GenerateLucasCertificate proves n prime and returns the certificate
// chain backing that proof, or false if n is composite.
func GenerateLucasCertificate[T intval.Int[T]](n T) (*certificate.Certificate[T], bool) {
	switch v := any(n).(type) {
	case intval.U64:
		c, ok := GenerateLucasCertificateU64(v)
		return any(c).(*certificate.Certificate[T]), ok
	case intval.U128:
		c, ok := GenerateLucasCertificateU128(v)
		return any(c).(*certificate.Certificate[T]), ok
	case intval.Big:
		c, ok := GenerateLucasCertificateBig(v)
		return any(c).(*certificate.Certificate[T]), ok
	default:
		panic(fmt.Sprintf("facto: unsupported width %T", n))
	}
}
