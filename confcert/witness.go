package confcert

import (
	"crypto/rand"
	"math/big"

	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/group"
	"github.com/takakv/facto/intval"
)

// WitnessCiphertext is an ElGamal encryption of a certified witness base:
// U = rG, V = base*G + r*PK.
type WitnessCiphertext struct {
	U group.Element
	V group.Element
}

// EncryptWitness encrypts e.Base under discloser public key pk in group
// gp, for later selective disclosure. Returns the ciphertext and the
// randomness used, which the encrypting party must keep to build the
// cross-group equality proof tying this ciphertext to a range-proven
// Pedersen commitment of the same base.
func EncryptWitness[T intval.Int[T]](e certificate.Element[T], pk group.Element, gp group.Group) (WitnessCiphertext, *big.Int, error) {
	r, err := rand.Int(rand.Reader, gp.N())
	if err != nil {
		return WitnessCiphertext{}, nil, err
	}

	base := intval.ToBigInt(e.Base)
	liftedBase := gp.Element().BaseScale(base)
	mask := gp.Element().Scale(pk, r)

	ct := WitnessCiphertext{
		U: gp.Element().BaseScale(r),
		V: gp.Element().Add(liftedBase, mask),
	}
	return ct, r, nil
}

// DecryptWitness recovers a plaintext base from ct given discloser secret
// key sk, searching the known range [lo, hi) a certificate's witness base
// must lie in. ElGamal is only additively homomorphic, so recovering the
// discrete log of V-sk*U requires search; a bounded range (certificate
// bases are always < n) makes that search finite rather than requiring a
// general discrete-log solver, which nothing in this module's dependency
// stack provides.
func DecryptWitness(ct WitnessCiphertext, sk *big.Int, lo, hi *big.Int, gp group.Group) (*big.Int, bool) {
	mask := gp.Element().Scale(ct.U, sk)
	target := gp.Element().Subtract(ct.V, mask)

	candidate := new(big.Int).Set(lo)
	one := big.NewInt(1)
	for candidate.Cmp(hi) < 0 {
		lifted := gp.Element().BaseScale(candidate)
		if lifted.IsEqual(target) {
			return new(big.Int).Set(candidate), true
		}
		candidate.Add(candidate, one)
	}
	return nil, false
}
