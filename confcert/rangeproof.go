package confcert

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/takakv/facto/algebra"
	"github.com/takakv/facto/bulletproofs"
	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/intval"
)

// ErrRangeTooWide is returned by ProveBaseInRange when the element's base
// lies outside the configured [Lo, Hi) range.
var ErrRangeTooWide = errors.New("confcert: base lies outside the proof range")

// RangeProofParams bundles a Bulletproofs setup for a fixed bit width
// alongside the [lo, hi) range it is used to prove membership in. A
// certificate's witness base always lies in [2, n); the bit width is the
// smallest power of two that is at least the bit length of hi-lo.
type RangeProofParams struct {
	bp bulletproofs.BulletProofSetupParams
	Lo *big.Int
	Hi *big.Int
}

// SetupRangeProof builds Bulletproof parameters proving membership in
// [lo, hi) over group gp. The resulting proof shows that base-lo lies in
// [0, 2^width) for that bit width, a range that can extend past hi-lo.
func SetupRangeProof(lo, hi *big.Int, gp algebra.Group) (RangeProofParams, error) {
	width := new(big.Int).Sub(hi, lo)
	bits := int64(width.BitLen())
	if bits < 1 {
		bits = 1
	}
	pow := int64(1)
	for pow < bits {
		pow *= 2
	}

	bp, err := bulletproofs.Setup(int64(1)<<uint(pow), gp)
	if err != nil {
		return RangeProofParams{}, errors.Wrap(err, "confcert: bulletproof setup")
	}
	return RangeProofParams{bp: bp, Lo: lo, Hi: hi}, nil
}

// ProveBaseInRange proves that e.Base lies in params' configured [Lo, Hi)
// range, returning the proof and the commitment randomness used.
func ProveBaseInRange[T intval.Int[T]](e certificate.Element[T], params RangeProofParams) (bulletproofs.BulletProof, *big.Int, error) {
	base := intval.ToBigInt(e.Base)
	if base.Cmp(params.Lo) < 0 || base.Cmp(params.Hi) >= 0 {
		return bulletproofs.BulletProof{}, nil, ErrRangeTooWide
	}
	shifted := new(big.Int).Sub(base, params.Lo)
	proof, r, err := bulletproofs.Prove(shifted, params.bp)
	if err != nil {
		return bulletproofs.BulletProof{}, nil, errors.Wrap(err, "confcert: bulletproof prove")
	}
	return proof, r, nil
}

// VerifyBaseInRange verifies a proof produced by ProveBaseInRange.
func VerifyBaseInRange(proof bulletproofs.BulletProof) (bool, error) {
	ok, err := proof.Verify()
	if err != nil {
		return false, errors.Wrap(err, "confcert: bulletproof verify")
	}
	return ok, nil
}
