// Package factoring is the top-level driver: it orchestrates trial
// division, Pollard's rho, Miller-Rabin, and Lucas certification into the
// factor/is-prime/certify operations the rest of the module exposes.
package factoring

import (
	"sort"

	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

// Context supplies the width-specific pieces the generic engine cannot
// derive from intval.Int[T] alone: how to build a Montgomery field for a
// given modulus, how to construct small constants, and, where one exists,
// a fixed deterministic Miller-Rabin witness set that alone decides
// primality across T's entire range. Per-width entry points (see facto_context.go)
// build one of these once and thread it through.
type Context[T intval.Int[T]] struct {
	NewField montgomery.Factory[T]
	From     intval.FromUint64[T]

	// DeterministicIsPrime, when set, settles primality for any n of width
	// T using a fixed witness set, with no Lucas certification required.
	// Widths without a known range-covering witness set (u128, Big) leave
	// this nil.
	DeterministicIsPrime func(n T, field montgomery.Field[T]) bool
}

// TrialDivisionBound matches the original's threshold for when to give up
// on trial division and switch to Pollard's rho: 2^12 - 1.
func (c Context[T]) TrialDivisionBound() T { return c.From(4095) }

func smallBases[T intval.Int[T]](n T, from intval.FromUint64[T]) []T {
	var bases []T
	for v := uint64(2); v <= 20; v++ {
		b := from(v)
		if b.Cmp(n) >= 0 {
			break
		}
		bases = append(bases, b)
	}
	return bases
}

func dedupeSorted[T intval.Int[T]](xs []T) []T {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x.Cmp(out[len(out)-1]) != 0 {
			out = append(out, x)
		}
	}
	return out
}

func sortInPlace[T intval.Int[T]](xs []T) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Cmp(xs[j]) < 0 })
}
