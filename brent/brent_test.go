package brent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/facto/intval"
)

// modMapper advances x -> (x*x + 1) mod m, the classic Pollard-style walk.
type modMapper struct{ m intval.U64 }

func (mp modMapper) Run(x intval.U64) intval.U64 {
	return x.Mul(x).Add(intval.U64(1)).Rem(mp.m)
}

// firstRepeatChecker stops as soon as tortoise == hare, which for a finite
// deterministic sequence always eventually happens.
type firstRepeatChecker struct{ stopped bool }

func (c *firstRepeatChecker) Check(tortoise, hare, count, power intval.U64) bool {
	return tortoise.Cmp(hare) == 0
}

func TestFindCycleTerminates(t *testing.T) {
	mapper := modMapper{m: 1000}
	checker := &firstRepeatChecker{}
	_, count := FindCycle[intval.U64](mapper, checker, intval.U64(2))
	// The walk over a finite modulus must enter a cycle; count is the
	// number of hare steps taken since the last tortoise reset.
	require.True(t, count.Cmp(intval.U64(0)) >= 0)
}
