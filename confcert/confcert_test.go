package confcert_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/confcert"
	"github.com/takakv/facto/group"
	"github.com/takakv/facto/intval"
)

func TestCommitOpen(t *testing.T) {
	groups := map[string]group.Group{
		"P256":      group.P256(),
		"SecP256k1": group.SecP256k1(),
		"P384":      group.P384(),
	}
	for name, gp := range groups {
		t.Run(name, func(t *testing.T) {
			h, err := gp.Generator().MapToGroup("confcert test blinding generator")
			require.NoError(t, err)

			elem := certificate.Element[intval.U64]{N: intval.U64(71), Base: intval.U64(11)}

			c, err := confcert.Commit(elem, h, gp)
			require.NoError(t, err)
			require.True(t, confcert.Open(c, elem, c.Randomness(), h, gp))

			other := certificate.Element[intval.U64]{N: intval.U64(71), Base: intval.U64(12)}
			require.False(t, confcert.Open(c, other, c.Randomness(), h, gp))
		})
	}
}

func TestEncryptDecryptWitness(t *testing.T) {
	gp := group.P256()

	secretKey, err := rand.Int(rand.Reader, gp.N())
	require.NoError(t, err)
	pk := gp.Element().BaseScale(secretKey)

	elem := certificate.Element[intval.U64]{N: intval.U64(71), Base: intval.U64(11)}
	ct, _, err := confcert.EncryptWitness(elem, pk, gp)
	require.NoError(t, err)

	got, ok := confcert.DecryptWitness(ct, secretKey, big.NewInt(2), big.NewInt(71), gp)
	require.True(t, ok)
	require.Equal(t, int64(11), got.Int64())
}

func TestDecryptWitnessOutOfRange(t *testing.T) {
	gp := group.P256()

	secretKey, err := rand.Int(rand.Reader, gp.N())
	require.NoError(t, err)
	pk := gp.Element().BaseScale(secretKey)

	elem := certificate.Element[intval.U64]{N: intval.U64(71), Base: intval.U64(11)}
	ct, _, err := confcert.EncryptWitness(elem, pk, gp)
	require.NoError(t, err)

	_, ok := confcert.DecryptWitness(ct, secretKey, big.NewInt(12), big.NewInt(20), gp)
	require.False(t, ok)
}
