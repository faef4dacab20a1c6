// Package pollardrho implements Pollard's rho factorization algorithm with
// Brent's cycle detection and batched GCD accumulation: instead of a GCD
// per step, differences are accumulated under modular multiplication and
// reduced to a GCD only periodically, which is far cheaper in practice.
package pollardrho

import (
	"github.com/takakv/facto/brent"
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
	"github.com/takakv/facto/numutil"
)

type mapper[T intval.Int[T]] struct {
	incrementMont T
	field         montgomery.Field[T]
}

func (m mapper[T]) Run(x T) T { return m.field.MulAddMod(x, x, m.incrementMont) }

func absDiff[T intval.Int[T]](a, b T) T {
	if a.Cmp(b) > 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// checker accumulates a running product of tortoise-hare differences under
// modular multiplication, only taking an actual GCD once every
// max(5, bitlen(power)/2)-bit block of steps, per Richard Brent's original
// tuning.
type checker[T intval.Int[T]] struct {
	field        montgomery.Field[T]
	accum        T
	n            T
	lastTortoise T
	lastHare     T
}

func (c *checker[T]) Check(tortoise, hare, count, power T) bool {
	diff := absDiff(tortoise, hare)
	c.accum = c.field.MulMod(c.accum, diff)
	c.lastTortoise = tortoise

	one := c.n.One()
	thresholdBits := power.BitLen() / 2
	if thresholdBits < 5 {
		thresholdBits = 5
	}
	blockModulus := one.Lsh(thresholdBits)
	if power.Sub(count).Rem(blockModulus).Cmp(one) == 0 {
		d := numutil.Gcd(c.field.ToNormal(c.accum), c.n)
		if d.Cmp(one) != 0 {
			return true
		}
		c.lastHare = hare
	}
	return false
}

// extract walks the hare forward from the last checkpoint one step at a
// time, computing a real GCD every step, to pin down which single step
// introduced the nontrivial factor the batched accumulator detected.
func (c *checker[T]) extract(m mapper[T]) T {
	one := c.n.One()
	hare := m.Run(c.lastHare)
	for {
		diff := absDiff(hare, c.lastTortoise)
		d := numutil.Gcd(c.field.ToNormal(diff), c.n)
		if d.Cmp(one) != 0 {
			return d
		}
		hare = m.Run(hare)
	}
}

// Find searches for a nontrivial factor of n by walking x_{i+1} = x_i^2 +
// increment starting from start, using field (already set up for modulus
// n). It reports false if the walk exhausted itself without finding a
// proper factor (the found divisor equals n itself).
func Find[T intval.Int[T]](n T, start T, increment T, field montgomery.Field[T]) (T, bool) {
	startMont := field.ToMontgomery(start)
	incrementMont := field.ToMontgomery(increment)
	m := mapper[T]{incrementMont: incrementMont, field: field}

	chk := &checker[T]{
		field:        field,
		accum:        field.ToMontgomeryUnchecked(n.One()),
		n:            n,
		lastTortoise: startMont,
		lastHare:     startMont,
	}
	brent.FindCycle[T](m, chk, startMont)

	d := chk.extract(m)
	if d.Cmp(n) == 0 {
		return n.Zero(), false
	}
	return d, true
}
