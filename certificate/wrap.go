package certificate

import "github.com/takakv/facto/intval"

// wrappingSink adapts a Sink[To] so a driver working at the narrower width
// From can push into it directly, widening every value through up on the
// way in. Used when a driver downshifts to a faster width internally (see
// facto_u128.go's u128-to-u64 fast path) but must still populate the caller's
// wider-width certificate.
type wrappingSink[From intval.Int[From], To intval.Int[To]] struct {
	inner Sink[To]
	up    func(From) To
}

// Wrap returns a Sink[From] backed by inner, translating every element
// through up before it reaches inner.
func Wrap[From intval.Int[From], To intval.Int[To]](inner Sink[To], up func(From) To) Sink[From] {
	return &wrappingSink[From, To]{inner: inner, up: up}
}

func (w *wrappingSink[From, To]) Push(e Element[From]) {
	divisors := make([]To, len(e.UniquePrimeDivisors))
	for i, d := range e.UniquePrimeDivisors {
		divisors[i] = w.up(d)
	}
	w.inner.Push(Element[To]{N: w.up(e.N), Base: w.up(e.Base), UniquePrimeDivisors: divisors})
}

func (w *wrappingSink[From, To]) Contains(n From) bool {
	return w.inner.Contains(w.up(n))
}
