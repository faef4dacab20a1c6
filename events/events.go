// Package events defines the progress-observer hook factoring drivers call
// into as a number is broken down, so a caller can report progress or log
// without the core algorithm depending on any particular output channel.
package events

// Observer receives callbacks during the factorization of a number.
type Observer[T any] interface {
	// Factorized reports that n has just been split into parts, already
	// sorted into primes, composites, and factors of unknown primality.
	Factorized(n T, primes, composites, unknown []T)
	// IsPrime reports that n is now known to be prime.
	IsPrime(n T)
	// IsComposite reports that n is now known to be composite.
	IsComposite(n T)
}

// Noop is an Observer that discards every event, for callers that have no
// use for progress reporting.
type Noop[T any] struct{}

func (Noop[T]) Factorized(T, []T, []T, []T) {}
func (Noop[T]) IsPrime(T)                   {}
func (Noop[T]) IsComposite(T)               {}

// wrapping adapts an Observer[To] so a driver working at the narrower
// width From can report events to it directly, widening every value
// through up. Used by the same width-downshift fast paths that use
// certificate.Wrap.
type wrapping[From, To any] struct {
	inner Observer[To]
	up    func(From) To
}

// Wrap returns an Observer[From] backed by inner, translating every value
// through up before it reaches inner.
func Wrap[From, To any](inner Observer[To], up func(From) To) Observer[From] {
	return &wrapping[From, To]{inner: inner, up: up}
}

func (w *wrapping[From, To]) Factorized(n From, primes, composites, unknown []From) {
	w.inner.Factorized(w.up(n), mapSlice(primes, w.up), mapSlice(composites, w.up), mapSlice(unknown, w.up))
}

func (w *wrapping[From, To]) IsPrime(n From)     { w.inner.IsPrime(w.up(n)) }
func (w *wrapping[From, To]) IsComposite(n From) { w.inner.IsComposite(w.up(n)) }

func mapSlice[From, To any](xs []From, up func(From) To) []To {
	out := make([]To, len(xs))
	for i, x := range xs {
		out[i] = up(x)
	}
	return out
}
