package reverso

import (
	"strings"

	"github.com/npillmayer/reverso/letters"
	"github.com/npillmayer/reverso/runs"
	"golang.org/x/text/runes"
)

// Reverser reverses the letters of words.
// A Reverser is immutable and may be used concurrently.
type Reverser struct {
	letters runes.Set // which code-points are letters
}

// Option configures a Reverser.
type Option func(*Reverser)

// WithLetters sets the predicate which decides whether a code-point is a
// letter. Apostrophe, hyphen and backtick will never be considered letters,
// regardless of set. A nil set selects the default, letters.AlphabeticSet().
func WithLetters(set runes.Set) Option {
	return func(rv *Reverser) {
		rv.letters = letters.Guard(set)
	}
}

// New creates a Reverser. Without options, letters are code-points with the
// Unicode property Alphabetic.
func New(opts ...Option) *Reverser {
	rv := &Reverser{letters: letters.AlphabeticSet()}
	for _, opt := range opts {
		opt(rv)
	}
	return rv
}

var defaultReverser = New()

// Transform reverses the letters within every word of input, using a default
// Reverser.
//
//    Transform("houSe")      =  "esuOh"
//    Transform("third-part") =  "driht-trap"
//
func Transform(input string) string {
	return defaultReverser.Transform(input)
}

// Transform reverses the letters within every word of input, keeping
// the case pattern of every word in place. Non-letters stay untouched.
// The result has the same number of code-points as input.
// Bytes of input which are not valid UTF-8 are copied to the result verbatim.
//
// Transform never fails. If input contains no letters, it is returned as is.
func (rv *Reverser) Transform(input string) string {
	if input == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(input))
	sc := borrowScratch()
	defer sc.release()
	var buf []byte
	rest, letterRuns := input, 0
	for len(rest) > 0 {
		run, next, isLetters := runs.FirstRunInString(rest, rv.letters)
		if len(run) == 0 {
			CT().P("pos", len(input)-len(rest)).Errorf("reverso: run segmentation stuck, leaving input unchanged")
			return input
		}
		if isLetters {
			sc.loadString(run)
			sc.reverse()
			buf = sc.appendTo(buf[:0])
			sb.Write(buf)
			letterRuns++
		} else {
			sb.WriteString(run)
		}
		rest = next
	}
	if letterRuns == 0 {
		return input
	}
	return sb.String()
}

// ReverseRun reverses word as a single run, keeping its case pattern in place.
// No segmentation is done: every code-point of word takes part in the reversal.
// Code-points without case distinction (including non-letters) are moved, but
// not case-converted. Invalid UTF-8 in word is replaced by U+FFFD.
//
//    ReverseRun("won't") = "t'now"
//
func (rv *Reverser) ReverseRun(word string) string {
	if word == "" {
		return ""
	}
	sc := borrowScratch()
	defer sc.release()
	sc.loadString(word)
	sc.reverse()
	return string(sc.runes)
}
