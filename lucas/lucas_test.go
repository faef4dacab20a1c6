package lucas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

func TestU64WikipediaExample(t *testing.T) {
	n := intval.U64(71)
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)
	divisors := []intval.U64{2, 5, 7}

	require.Equal(t, Unknown, Test[intval.U64](n, divisors, intval.U64(17), field))
	require.Equal(t, Prime, Test[intval.U64](n, divisors, intval.U64(11), field))
}

func TestU64FindsAWitness(t *testing.T) {
	n := intval.U64(442069)
	field, err := montgomery.NewU64Field(n)
	require.NoError(t, err)
	divisors := []intval.U64{2, 3, 11, 17, 197}

	found := false
	for base := intval.U64(2); base.Cmp(n) < 0; base = base.Add(1) {
		switch Test[intval.U64](n, divisors, base, field) {
		case Prime:
			found = true
		case Composite:
			t.Fatalf("442069 incorrectly reported composite with base %s", base.String())
		}
		if found {
			break
		}
	}
	require.True(t, found)
}
