/*
Package letters defines which code-points count as letters.

The default notion of letter is the Unicode derived property Alphabetic,
which is the union of general categories L and Nl and the contributory
property Other_Alphabetic. The narrower general category L is available as
an alternative.

Separators, i.e. apostrophe, hyphen-minus and backtick, are never letters,
whatever predicate is in use.

Attention

Before using the Alphabetic range table directly, clients will have to
initialize it:

  SetupClasses()

All predicate functions of this package call it transparently.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package letters

import (
	"sync"
	"unicode"

	"github.com/npillmayer/reverso/internal/tracing"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// Separators of words. None of them is a letter in any Unicode sense, but
// they are listed explicitly to guard custom predicates.
const (
	Apostrophe = '\''
	Hyphen     = '-'
	Backtick   = '`'
)

// Alphabetic is a range table for the Unicode property Alphabetic.
// It is nil until SetupClasses() has been called.
var Alphabetic *unicode.RangeTable

var setupOnce sync.Once

// SetupClasses creates the range table for Alphabetic.
// (Concurrency-safe).
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

func setupClasses() {
	Alphabetic = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	tracing.P("ranges", len(Alphabetic.R16)+len(Alphabetic.R32)).Debugf("letters: Alphabetic table set up")
}

// IsSeparator is true for apostrophe, hyphen-minus and backtick.
func IsSeparator(r rune) bool {
	return r == Apostrophe || r == Hyphen || r == Backtick
}

// IsAlphabetic reports whether r has the Unicode property Alphabetic.
func IsAlphabetic(r rune) bool {
	if r < 0x80 { // fast path for ASCII
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
	SetupClasses()
	return unicode.Is(Alphabetic, r)
}

// IsLetter reports whether r is of Unicode general category L.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

var (
	alphabeticSet = guard(runes.Predicate(IsAlphabetic))
	letterSet     = guard(runes.In(unicode.L))
)

// AlphabeticSet returns the set of Alphabetic code-points, excluding separators.
func AlphabeticSet() runes.Set {
	return alphabeticSet
}

// LetterSet returns the set of code-points of general category L, excluding
// separators.
func LetterSet() runes.Set {
	return letterSet
}

// Guard wraps a set such that separators are never contained in it.
// Guard(nil) returns AlphabeticSet(). Guarding a guarded set is a no-op.
func Guard(set runes.Set) runes.Set {
	if set == nil {
		return alphabeticSet
	}
	if g, ok := set.(guarded); ok {
		return g
	}
	return guard(set)
}

func guard(set runes.Set) runes.Set {
	return guarded{set: set}
}

type guarded struct {
	set runes.Set
}

func (g guarded) Contains(r rune) bool {
	return !IsSeparator(r) && g.set.Contains(r)
}
