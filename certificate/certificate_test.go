package certificate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

func TestPushKeepsSortedOrder(t *testing.T) {
	c := &Certificate[intval.U64]{}
	c.Push(Element[intval.U64]{N: 71, Base: 11, UniquePrimeDivisors: []intval.U64{2, 5, 7}})
	c.Push(Element[intval.U64]{N: 5, Base: 2})
	c.Push(Element[intval.U64]{N: 17, Base: 3})

	got := c.Elements()
	require.Len(t, got, 3)
	require.Equal(t, intval.U64(5), got[0].N)
	require.Equal(t, intval.U64(17), got[1].N)
	require.Equal(t, intval.U64(71), got[2].N)
}

func TestPushIsIdempotent(t *testing.T) {
	c := &Certificate[intval.U64]{}
	c.Push(Element[intval.U64]{N: 5, Base: 2})
	c.Push(Element[intval.U64]{N: 5, Base: 3})
	require.Len(t, c.Elements(), 1)
	e, ok := c.Get(intval.U64(5))
	require.True(t, ok)
	require.Equal(t, intval.U64(2), e.Base)
}

func TestContainsAndGetMax(t *testing.T) {
	c := New(Element[intval.U64]{N: 2, Base: 1})
	c.Push(Element[intval.U64]{N: 5, Base: 2})
	c.Push(Element[intval.U64]{N: 71, Base: 11, UniquePrimeDivisors: []intval.U64{2, 5, 7}})

	require.True(t, c.Contains(intval.U64(5)))
	require.False(t, c.Contains(intval.U64(6)))

	max, ok := c.GetMax()
	require.True(t, ok)
	require.Equal(t, intval.U64(71), max.N)
}

func TestCertaintyLevels(t *testing.T) {
	g := Guaranteed[intval.U64]()
	require.False(t, g.RequiresCertificate())

	c := New(Element[intval.U64]{N: 2, Base: 1})
	certified := Certified[intval.U64](c)
	require.True(t, certified.RequiresCertificate())
	require.Same(t, c, certified.Certificate().(*Certificate[intval.U64]))
}
