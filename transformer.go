package reverso

import (
	"unicode/utf8"

	"github.com/npillmayer/reverso/runs"
	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer which reverses the letters of
// words in a stream of UTF-8 text, the same way Transform does for strings.
//
// Runs of non-letters are passed on as soon as they arrive. A run of letters
// is held back until the first non-letter following it is visible, or until
// the end of the input is reached. transform.Reader and transform.Writer
// therefore cannot handle letter runs longer than their internal source
// buffer; they will report transform.ErrShortSrc. transform.String and
// transform.Bytes are not limited this way.
//
// A transformer is not safe for concurrent use, but a Reverser may hand out
// any number of them.
func (rv *Reverser) Transformer() transform.Transformer {
	return &transformer{rv: rv}
}

type transformer struct {
	transform.NopResetter
	rv  *Reverser
	sc  scratch // private, not pooled
	out []byte  // output buffer for the current letter run
}

// Transform is part of interface transform.Transformer.
func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		input := src[nSrc:]
		if !atEOF {
			input = completeRunes(input)
			if len(input) == 0 {
				err = transform.ErrShortSrc
				break
			}
		}
		run, rest, isLetters := runs.FirstRun(input, t.rv.letters)
		out := run
		if isLetters {
			if len(rest) == 0 && !atEOF { // letter run may continue
				err = transform.ErrShortSrc
				break
			}
			t.sc.loadBytes(run)
			t.sc.reverse()
			t.out = t.sc.appendTo(t.out[:0])
			out = t.out
		}
		if nDst+len(out) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], out)
		nSrc += len(run)
	}
	return nDst, nSrc, err
}

// completeRunes cuts off an incomplete UTF-8 sequence at the end of b.
func completeRunes(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}
