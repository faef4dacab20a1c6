package certificate

import "github.com/takakv/facto/intval"

// Sink is anything a primality driver can push certified elements into and
// query for membership. *Certificate[T] is the usual implementation; a
// width-downshifted driver (e.g. one that ran its search as U64 for speed
// on behalf of a caller working in U128) instead uses an adapter that
// widens every element on the way through, so the caller's own
// wider-width certificate still ends up complete. See Wrap.
type Sink[T intval.Int[T]] interface {
	Push(e Element[T])
	Contains(n T) bool
}

// Certainty describes how thoroughly a factor's primality must be proven
// before the driver is allowed to stop looking for smaller factors of it.
// Guaranteed still decides primality definitely (through the width's
// deterministic witness set where one exists, otherwise through the Lucas
// test) but records no certificate; Certified also records a full Lucas
// certificate chain down to already-certified primes.
type Certainty[T intval.Int[T]] struct {
	certified Sink[T]
}

// Guaranteed decides primality definitely without recording a certificate.
func Guaranteed[T intval.Int[T]]() Certainty[T] { return Certainty[T]{} }

// Certified requires every factor to carry a Lucas certificate reachable
// through sink.
func Certified[T intval.Int[T]](sink Sink[T]) Certainty[T] { return Certainty[T]{certified: sink} }

// RequiresCertificate reports whether this certainty level records Lucas
// certificate elements in a sink.
func (c Certainty[T]) RequiresCertificate() bool { return c.certified != nil }

// Certificate returns the backing sink, or nil for Guaranteed.
func (c Certainty[T]) Certificate() Sink[T] { return c.certified }
