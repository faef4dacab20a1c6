// Package certificate implements Lucas primality certificates: a
// self-contained proof tree that lets a verifier re-check a primality claim
// without re-running any factoring.
package certificate

import (
	"sort"

	"github.com/takakv/facto/intval"
)

// Element is one node of a Lucas certificate: the fact that n is prime,
// witnessed by base, given the complete set of n-1's unique prime
// divisors (each of which must itself be certified, recursively, for the
// certificate to be valid).
type Element[T intval.Int[T]] struct {
	N                   T
	Base                T
	UniquePrimeDivisors []T
}

// Certificate is an ordered, deduplicated collection of certified primes.
// Elements are kept sorted by N so Contains and Get run in O(log n) (Push
// finds its slot the same way, then shifts the later elements); a map
// keyed by T is deliberately avoided since one of this module's widths
// (intval.Big) wraps a pointer and does not support value equality via ==.
type Certificate[T intval.Int[T]] struct {
	elements []Element[T]
}

// New returns a certificate containing a single element.
func New[T intval.Int[T]](e Element[T]) *Certificate[T] {
	c := &Certificate[T]{}
	c.Push(e)
	return c
}

func (c *Certificate[T]) search(n T) (int, bool) {
	idx := sort.Search(len(c.elements), func(i int) bool {
		return c.elements[i].N.Cmp(n) >= 0
	})
	if idx < len(c.elements) && c.elements[idx].N.Cmp(n) == 0 {
		return idx, true
	}
	return idx, false
}

// Push inserts e, keeping elements sorted by N. Pushing an element whose N
// is already present is a no-op, matching the original's idempotent push.
func (c *Certificate[T]) Push(e Element[T]) {
	idx, found := c.search(e.N)
	if found {
		return
	}
	c.elements = append(c.elements, Element[T]{})
	copy(c.elements[idx+1:], c.elements[idx:])
	c.elements[idx] = e
}

// Contains reports whether n has a certified element in this certificate.
func (c *Certificate[T]) Contains(n T) bool {
	_, found := c.search(n)
	return found
}

// Get returns the certified element for n, if any.
func (c *Certificate[T]) Get(n T) (Element[T], bool) {
	idx, found := c.search(n)
	if !found {
		return Element[T]{}, false
	}
	return c.elements[idx], true
}

// GetMax returns the element with the largest N, presumably the number the
// certificate was originally built to certify.
func (c *Certificate[T]) GetMax() (Element[T], bool) {
	if len(c.elements) == 0 {
		return Element[T]{}, false
	}
	return c.elements[len(c.elements)-1], true
}

// Elements returns every certified element, sorted by N.
func (c *Certificate[T]) Elements() []Element[T] {
	return c.elements
}
