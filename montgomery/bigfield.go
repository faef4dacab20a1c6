package montgomery

import (
	"math/big"

	"github.com/takakv/facto/intval"
)

// bigField implements Field[intval.Big] without true Montgomery reduction:
// math/big's Mod already does its own efficient division, so there is no
// REDC win to chase for the arbitrary-precision width, and ToMontgomery /
// ToNormal collapse to the identity (mod n). The interface is kept uniform
// across widths so callers in pollardrho/millerrabin/lucas never need to
// special-case the arbitrary-precision driver (see DESIGN.md).
type bigField struct {
	n *big.Int
}

// NewBigField builds a Field context for the odd modulus n.
func NewBigField(n intval.Big) (Field[intval.Big], error) {
	nb := n.BigInt()
	if nb.Bit(0) == 0 {
		return nil, ErrEvenModulus
	}
	return &bigField{n: new(big.Int).Set(nb)}, nil
}

func (f *bigField) Modulus() intval.Big { return intval.NewBig(f.n) }

func (f *bigField) ToMontgomery(x intval.Big) intval.Big {
	return intval.NewBig(new(big.Int).Mod(x.BigInt(), f.n))
}

func (f *bigField) ToMontgomeryUnchecked(x intval.Big) intval.Big { return x }

func (f *bigField) MulMod(a, b intval.Big) intval.Big {
	r := new(big.Int).Mul(a.BigInt(), b.BigInt())
	r.Mod(r, f.n)
	return intval.NewBig(r)
}

func (f *bigField) MulAddMod(a, b, addend intval.Big) intval.Big {
	r := new(big.Int).Mul(a.BigInt(), b.BigInt())
	r.Add(r, addend.BigInt())
	r.Mod(r, f.n)
	return intval.NewBig(r)
}

func (f *bigField) Pow(base, exponent intval.Big) intval.Big {
	r := new(big.Int).Exp(base.BigInt(), exponent.BigInt(), f.n)
	return intval.NewBig(r)
}

func (f *bigField) ToNormal(x intval.Big) intval.Big { return x }
