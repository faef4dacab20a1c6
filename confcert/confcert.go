// Package confcert builds confidential certificates around a factoring
// witness: a Pedersen commitment to a certificate.Element's base, a
// Bulletproof that the committed base lies within the range a Lucas
// certificate requires ([2, n)), and an ElGamal encryption of the base
// under a discloser's key for selective disclosure later. None of this
// is needed to factor or certify a number; it exists for protocols that
// want to prove "this n is certified prime" without publishing which
// witnesses were used to certify it.
package confcert

import (
	"crypto/rand"
	"math/big"

	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/group"
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/util"
)

// Commitment is a Pedersen commitment to a certified witness base.
type Commitment struct {
	C          group.Element
	randomness *big.Int
}

// Randomness exposes the opening randomness, kept by the committer to
// later open or re-derive an equality proof; a verifier never sees it.
func (c Commitment) Randomness() *big.Int { return c.randomness }

// Commit produces a Pedersen commitment to e.Base under generator h in
// group gp. The randomness used to open it is kept in the returned
// Commitment (see Randomness).
func Commit[T intval.Int[T]](e certificate.Element[T], h group.Element, gp group.Group) (Commitment, error) {
	r, err := rand.Int(rand.Reader, gp.N())
	if err != nil {
		return Commitment{}, err
	}
	c := util.PedersenCommit(intval.ToBigInt(e.Base), r, h, gp)
	return Commitment{C: c, randomness: r}, nil
}

// Open reports whether randomness r opens commitment c to e.Base under
// generator h in group gp, by recomputing the commitment independently.
func Open[T intval.Int[T]](c Commitment, e certificate.Element[T], r *big.Int, h group.Element, gp group.Group) bool {
	recomputed := util.PedersenCommit(intval.ToBigInt(e.Base), r, h, gp)
	return recomputed.IsEqual(c.C)
}
