package voteproof_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/group"
	"github.com/takakv/facto/voteproof"
)

func buildParams(t *testing.T) (voteproof.ProofParams, *big.Int, *big.Int) {
	t.Helper()
	gp := group.P256()

	hSecret, err := rand.Int(rand.Reader, gp.N())
	require.NoError(t, err)
	var ff voteproof.GroupParameters
	ff.I = gp
	ff.N = gp.N()
	ff.F = gp.P()
	ff.G = gp.Generator()
	ff.H = gp.Element().BaseScale(hSecret)

	hSecret2, err := rand.Int(rand.Reader, gp.N())
	require.NoError(t, err)
	var ec voteproof.GroupParameters
	ec.I = gp
	ec.N = gp.N()
	ec.F = gp.P()
	ec.G = gp.Generator()
	ec.H = gp.Element().BaseScale(hSecret2)

	params, err := voteproof.Setup(16, 64, 253, big.NewInt(2), big.NewInt(1_000_003),
		voteproof.AlgebraicParameters{GFF: ff, GEC: ec})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), params.RangeLo)
	require.Equal(t, big.NewInt(1_000_003), params.RangeHi)
	return params, ff.N, ec.N
}

func TestSetupProveVerify(t *testing.T) {
	params, ffOrder, ecOrder := buildParams(t)

	secret := big.NewInt(591)
	rp, err := rand.Int(rand.Reader, ffOrder)
	require.NoError(t, err)
	rq1, err := rand.Int(rand.Reader, ecOrder)
	require.NoError(t, err)
	rq2, err := rand.Int(rand.Reader, ecOrder)
	require.NoError(t, err)

	y := params.GFF.I.Element().BaseScale(rp)
	liftedSecret := params.GFF.I.Element().BaseScale(secret)
	mask := params.GFF.I.Element().Scale(params.GFF.H, rp)
	xp := params.GFF.I.Element().Add(liftedSecret, mask)

	liftedQ1 := params.GEC.I.Element().BaseScale(secret)
	maskQ1 := params.GEC.I.Element().Scale(params.GEC.H, rq1)
	xq1 := params.GEC.I.Element().Add(liftedQ1, maskQ1)

	liftedQ2 := params.GEC.I.Element().BaseScale(secret)
	maskQ2 := params.GEC.I.Element().Scale(params.GEC.H, rq2)
	xq2 := params.GEC.I.Element().Add(liftedQ2, maskQ2)

	proof := voteproof.Prove(secret, rp, rq1, rq2, params)

	comm := voteproof.VerCommitments{Y: y, Xp: xp, Xq1: xq1, Xq2: xq2}
	require.True(t, proof.Verify(comm))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	params, ffOrder, ecOrder := buildParams(t)

	secret := big.NewInt(591)
	rp, err := rand.Int(rand.Reader, ffOrder)
	require.NoError(t, err)
	rq1, err := rand.Int(rand.Reader, ecOrder)
	require.NoError(t, err)
	rq2, err := rand.Int(rand.Reader, ecOrder)
	require.NoError(t, err)

	proof := voteproof.Prove(secret, rp, rq1, rq2, params)

	wrongSecret := big.NewInt(592)
	liftedWrong := params.GFF.I.Element().BaseScale(wrongSecret)
	mask := params.GFF.I.Element().Scale(params.GFF.H, rp)
	xp := params.GFF.I.Element().Add(liftedWrong, mask)

	y := params.GFF.I.Element().BaseScale(rp)
	liftedQ1 := params.GEC.I.Element().BaseScale(secret)
	maskQ1 := params.GEC.I.Element().Scale(params.GEC.H, rq1)
	xq1 := params.GEC.I.Element().Add(liftedQ1, maskQ1)
	liftedQ2 := params.GEC.I.Element().BaseScale(secret)
	maskQ2 := params.GEC.I.Element().Scale(params.GEC.H, rq2)
	xq2 := params.GEC.I.Element().Add(liftedQ2, maskQ2)

	comm := voteproof.VerCommitments{Y: y, Xp: xp, Xq1: xq1, Xq2: xq2}
	require.False(t, proof.Verify(comm))
}

func TestSetupRejectsInconsistentParameters(t *testing.T) {
	gp := group.P256()
	var ff voteproof.GroupParameters
	ff.I = gp
	ff.N = gp.N()
	ff.G = gp.Generator()
	ff.H = gp.Generator()

	_, err := voteproof.Setup(16, 64, 10, big.NewInt(2), big.NewInt(100),
		voteproof.AlgebraicParameters{GFF: ff, GEC: ff})
	require.Error(t, err)
}
