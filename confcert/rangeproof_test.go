package confcert_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/algebra"
	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/confcert"
	"github.com/takakv/facto/intval"
)

func TestSetupProveVerifyRangeProof(t *testing.T) {
	gp := algebra.NewSecP256k1Group()

	lo := big.NewInt(2)
	hi := big.NewInt(1000)
	params, err := confcert.SetupRangeProof(lo, hi, gp)
	require.NoError(t, err)

	elem := certificate.Element[intval.U64]{N: intval.U64(997), Base: intval.U64(591)}
	proof, _, err := confcert.ProveBaseInRange(elem, params)
	require.NoError(t, err)

	ok, err := confcert.VerifyBaseInRange(proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestProveBaseOutOfRange(t *testing.T) {
	gp := algebra.NewSecP256k1Group()

	params, err := confcert.SetupRangeProof(big.NewInt(2), big.NewInt(100), gp)
	require.NoError(t, err)

	elem := certificate.Element[intval.U64]{N: intval.U64(997), Base: intval.U64(591)}
	_, _, err = confcert.ProveBaseInRange(elem, params)
	require.ErrorIs(t, err, confcert.ErrRangeTooWide)
}
