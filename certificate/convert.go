package certificate

import "github.com/takakv/facto/intval"

// Map widens every element of c into the wider width To using up, so a
// certificate built while a value was downshifted to a faster width (e.g.
// u128 that happened to fit in u64) can still be merged into a caller's
// certificate at the original width.
func Map[From intval.Int[From], To intval.Int[To]](c *Certificate[From], up func(From) To) *Certificate[To] {
	out := &Certificate[To]{}
	for _, e := range c.Elements() {
		divisors := make([]To, len(e.UniquePrimeDivisors))
		for i, d := range e.UniquePrimeDivisors {
			divisors[i] = up(d)
		}
		out.Push(Element[To]{
			N:                   up(e.N),
			Base:                up(e.Base),
			UniquePrimeDivisors: divisors,
		})
	}
	return out
}

// MergeInto widens every element of c via up and pushes it into dst,
// keeping dst's existing elements.
func MergeInto[From intval.Int[From], To intval.Int[To]](dst *Certificate[To], c *Certificate[From], up func(From) To) {
	for _, e := range c.Elements() {
		divisors := make([]To, len(e.UniquePrimeDivisors))
		for i, d := range e.UniquePrimeDivisors {
			divisors[i] = up(d)
		}
		dst.Push(Element[To]{
			N:                   up(e.N),
			Base:                up(e.Base),
			UniquePrimeDivisors: divisors,
		})
	}
}
