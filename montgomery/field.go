// Package montgomery implements the Montgomery-form modular arithmetic
// "field" that spec.md §4.1 treats as an external black box (setup / wrap /
// to_montgomery / redc / pow / to_normal). Nothing in the example pack
// ships a runtime-arbitrary-modulus REDC primitive (see DESIGN.md), so this
// package supplies it directly, once per width, behind one generic
// interface.
package montgomery

import "github.com/takakv/facto/intval"

// Field is a Montgomery context for a fixed odd modulus N. Elements are
// ordinary values of type T carrying their Montgomery-form bit pattern
// (value * R mod N for the field's internal R); ToMontgomery and ToNormal
// cross the boundary between plain residues and Montgomery form.
type Field[T intval.Int[T]] interface {
	// Modulus returns N.
	Modulus() T

	// ToMontgomery reduces x modulo N and lifts it into Montgomery form.
	// This is spec.md's "wrap" followed by "to_montgomery".
	ToMontgomery(x T) T

	// ToMontgomeryUnchecked lifts x into Montgomery form assuming
	// 0 <= x < N already; used for small known-reduced constants such as
	// 1 or N-1, matching the original's to_montgomery_unchecked.
	ToMontgomeryUnchecked(x T) T

	// MulMod returns REDC(a*b): given two Montgomery-form elements, the
	// Montgomery-form element representing their product mod N.
	MulMod(a, b T) T

	// MulAddMod returns REDC(a*b + addend): like MulMod, but folds a third
	// Montgomery-form addend into the double-width accumulator before
	// reducing, so e.g. Pollard's rho's x*x+increment step never risks a
	// single-width overflow between the multiply and the add.
	MulAddMod(a, b, addend T) T

	// Pow returns base^exponent in Montgomery form, base itself given in
	// Montgomery form and exponent given as a plain (non-Montgomery)
	// integer, via repeated squaring using MulMod.
	Pow(base, exponent T) T

	// ToNormal lowers a Montgomery-form element back to a plain residue
	// mod N. This is REDC applied to a single-width Montgomery value.
	ToNormal(x T) T
}

// Factory builds a Field for modulus n, matching the signature of
// NewU64Field, NewU128Field, and NewBigField. Generic algorithms that need
// to set up a field for a runtime value of a width they don't know at
// compile time take a Factory as a dependency rather than referring to one
// of those constructors directly.
type Factory[T intval.Int[T]] func(n T) (Field[T], error)
