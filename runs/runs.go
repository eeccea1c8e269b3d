/*
Package runs splits text into alternating runs of letters and non-letters.

A run is a maximal, non-empty sequence of code-points which are either all
letters or all non-letters. Runs are found by a single linear scan; there is
no lookahead beyond the code-point at hand. Concatenating the runs of a text
in order reproduces the text byte for byte. Bytes which are not valid UTF-8
are treated as non-letters and left untouched.

Typical Usage

Modelled after the First…InString functions of text segmentation packages:

  rest := text
  for len(rest) > 0 {
      var run string
      var isLetters bool
      run, rest, isLetters = runs.FirstRunInString(rest, nil)
      // do something with run
  }

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package runs

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/reverso/internal/tracing"
	"github.com/npillmayer/reverso/letters"
	"golang.org/x/text/runes"
)

// Run is a segment of text, either consisting of letters only or of
// non-letters only.
type Run struct {
	Text    string // the code-points of the run
	Letters bool   // is this a run of letters?
}

// String for debugging purposes.
func (r Run) String() string {
	if r.Letters {
		return "L[" + r.Text + "]"
	}
	return "N[" + r.Text + "]"
}

// FirstRunInString returns the first run of s, together with the rest of s
// following the run. isLetters tells if run consists of letters.
// If s is empty, empty strings are returned.
//
// letterSet decides which code-points are letters. A nil set selects
// letters.AlphabeticSet(). Separators are never letters.
func FirstRunInString(s string, letterSet runes.Set) (run, rest string, isLetters bool) {
	if len(s) == 0 {
		return "", "", false
	}
	letterSet = letters.Guard(letterSet)
	r, size := utf8.DecodeRuneInString(s)
	isLetters = isLetter(letterSet, r, size)
	i := size
	for i < len(s) {
		r, size = utf8.DecodeRuneInString(s[i:])
		if isLetter(letterSet, r, size) != isLetters {
			break
		}
		i += size
	}
	return s[:i], s[i:], isLetters
}

// FirstRun returns the first run of b, together with the rest of b
// following the run. It works like FirstRunInString.
func FirstRun(b []byte, letterSet runes.Set) (run, rest []byte, isLetters bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	letterSet = letters.Guard(letterSet)
	r, size := utf8.DecodeRune(b)
	isLetters = isLetter(letterSet, r, size)
	i := size
	for i < len(b) {
		r, size = utf8.DecodeRune(b[i:])
		if isLetter(letterSet, r, size) != isLetters {
			break
		}
		i += size
	}
	return b[:i], b[i:], isLetters
}

// A decoding error (RuneError of size 1) is never a letter.
func isLetter(set runes.Set, r rune, size int) bool {
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return set.Contains(r)
}

// Split segments s into runs. The runs alternate between letters and
// non-letters. An empty s results in an empty slice.
func Split(s string, letterSet runes.Set) []Run {
	var result []Run
	letterSet = letters.Guard(letterSet)
	for len(s) > 0 {
		var run Run
		run.Text, s, run.Letters = FirstRunInString(s, letterSet)
		result = append(result, run)
	}
	tracing.P("runs", len(result)).Debugf("split text into runs")
	return result
}

// Join concatenates the text of runs.
func Join(runs []Run) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}
