/*
Package casing classifies code-points by letter case.

A code-point is classified by comparing it to its own simple upper- and
lowercase mappings, as provided by package unicode. Simple mappings are
one code-point in, one code-point out and are locale-invariant. Full case
mappings, where a single code-point may expand to a sequence (e.g., German
sharp s to "SS"), are not considered.

   'A'  →  Upper    (A = upper(A),  A ≠ lower(A))
   'a'  →  Lower    (a = lower(a),  a ≠ upper(a))
   '川' →  Neutral  (no case distinction)
   'ß'  →  Neutral  (upper(ß) = lower(ß) = ß for simple mappings)
   'ǅ'  →  Neutral  (titlecase: differs from both mappings)

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package casing

import "unicode"

// Class is the case class of a code-point.
type Class int8

//go:generate stringer -type=Class
const (
	Neutral Class = iota // no case distinction
	Upper                // uppercase letter
	Lower                // lowercase letter
)

// Of returns the case class of r.
func Of(r rune) Class {
	up, lo := unicode.ToUpper(r), unicode.ToLower(r)
	if r == up && r != lo {
		return Upper
	}
	if r == lo && r != up {
		return Lower
	}
	return Neutral
}

// Apply converts r to the case of class c. For Neutral, r is returned as is.
func Apply(c Class, r rune) rune {
	switch c {
	case Upper:
		return unicode.ToUpper(r)
	case Lower:
		return unicode.ToLower(r)
	}
	return r
}

// Mask records the case classes of runes into mask, which is grown as
// necessary, and returns it. Position i of the result holds the case class
// of runes[i].
func Mask(mask []Class, runes []rune) []Class {
	if cap(mask) < len(runes) {
		mask = make([]Class, len(runes))
	}
	mask = mask[:len(runes)]
	for i, r := range runes {
		mask[i] = Of(r)
	}
	return mask
}

// ApplyMask re-cases runes in place, position by position, according to mask.
// len(mask) must be at least len(runes).
func ApplyMask(mask []Class, runes []rune) {
	for i, r := range runes {
		runes[i] = Apply(mask[i], r)
	}
}
