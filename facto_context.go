// Package facto factors integers and proves their prime factors prime,
// with three interchangeable widths (64-bit, 128-bit, and arbitrary
// precision) sharing one generic implementation.
package facto

import (
	"github.com/takakv/facto/factoring"
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/millerrabin"
	"github.com/takakv/facto/montgomery"
)

var u64Ctx = factoring.Context[intval.U64]{
	NewField:             montgomery.NewU64Field,
	From:                 intval.NewU64,
	DeterministicIsPrime: millerrabin.IsPrimeU64,
}
var u128Ctx = factoring.Context[intval.U128]{NewField: montgomery.NewU128Field, From: intval.U128FromUint64}
var bigCtx = factoring.Context[intval.Big]{NewField: montgomery.NewBigField, From: intval.BigFromUint64}
