package qsieve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/qsieve"
)

// TestFindSmallSemiprime exercises the sieve against a textbook semiprime.
// A relation set is not guaranteed to close within any fixed bound (see
// DESIGN.md), so this only asserts that when Find does report a factor,
// that factor genuinely divides n.
func TestFindSmallSemiprime(t *testing.T) {
	n := intval.BigFromUint64(15347) // 103 * 149
	g, ok := qsieve.Find(n, 40, 2000)
	if !ok {
		t.Skip("sieve did not close a relation set within the bound")
	}
	nb := n.BigInt()
	gb := g.BigInt()
	mod := new(big.Int).Mod(nb, gb)
	require.Zero(t, mod.Sign())
}
