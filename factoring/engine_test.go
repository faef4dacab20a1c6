package factoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/events"
	"github.com/takakv/facto/factoring"
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

var u64Ctx = factoring.Context[intval.U64]{NewField: montgomery.NewU64Field, From: intval.NewU64}

func productOf(t *testing.T, factors []intval.U64) intval.U64 {
	t.Helper()
	product := intval.U64(1)
	for _, f := range factors {
		product = product.Mul(f)
	}
	return product
}

func TestCertifiedFactorPrime(t *testing.T) {
	cert := &certificate.Certificate[intval.U64]{}
	factors := factoring.CertifiedFactor(intval.U64(7919), certificate.Certified[intval.U64](cert), events.Noop[intval.U64]{}, u64Ctx)
	require.Equal(t, []intval.U64{7919}, factors)
	require.True(t, cert.Contains(intval.U64(7919)))
}

func TestCertifiedFactorComposite(t *testing.T) {
	n := intval.U64(2) * 2 * 3 * 3 * 5 * 101
	cert := &certificate.Certificate[intval.U64]{}
	factors := factoring.CertifiedFactor(n, certificate.Certified[intval.U64](cert), events.Noop[intval.U64]{}, u64Ctx)
	require.Equal(t, n, productOf(t, factors))
	for _, f := range factors {
		require.True(t, cert.Contains(f))
	}
}

func TestCertifiedFactorLargeSemiprime(t *testing.T) {
	n := intval.U64(99991) * intval.U64(99989)
	factors := factoring.CertifiedFactor(n, certificate.Guaranteed[intval.U64](), events.Noop[intval.U64]{}, u64Ctx)
	require.Equal(t, []intval.U64{99989, 99991}, factors)
}

func TestCertifiedPrimeCheckTwo(t *testing.T) {
	require.True(t, factoring.CertifiedPrimeCheck(intval.U64(2), certificate.Guaranteed[intval.U64](), u64Ctx))
	require.False(t, factoring.CertifiedPrimeCheck(intval.U64(4), certificate.Guaranteed[intval.U64](), u64Ctx))
}

type recordingObserver struct {
	factorized int
	primes     []intval.U64
	composites []intval.U64
}

func (r *recordingObserver) Factorized(n intval.U64, prime, composite, split []intval.U64) {
	r.factorized++
}
func (r *recordingObserver) IsPrime(n intval.U64)     { r.primes = append(r.primes, n) }
func (r *recordingObserver) IsComposite(n intval.U64) { r.composites = append(r.composites, n) }

func TestCertifiedFactorReportsEvents(t *testing.T) {
	n := intval.U64(99991) * intval.U64(99989)
	obs := &recordingObserver{}
	factoring.CertifiedFactor(n, certificate.Guaranteed[intval.U64](), obs, u64Ctx)
	require.ElementsMatch(t, []intval.U64{99989, 99991}, obs.primes)
}
