/*
Package reverso reverses the letters of words, keeping case and punctuation in place.

Description

Text is split into alternating runs of letters and non-letters. Every run of
letters is reversed, while the case pattern of the run stays where it was:
if the first letter of a word has been uppercase, the first letter of the
reversed word will be uppercase, too, and so on for every position.

   Cat        →  Tac
   houSe      →  esuOh
   third-part →  driht-trap
   won't've   →  now't'ev
   川山        →  山川

Non-letters, i.e. digits, punctuation, whitespace and the separators
apostrophe, hyphen and backtick, are never moved and never changed.

Letters and Case

By default a letter is a code-point with the Unicode property Alphabetic
(see package letters). Letter case is determined per code-point by package
casing, using simple, locale-invariant case mappings. Code-points without a
case distinction (CJK ideographs, Arabic letters, but also the German sharp s)
are reversed without any case conversion.

We do not consider grapheme clusters: a letter followed by a combining mark
is a sequence of two code-points, which will be reversed like any other pair
of code-points.

Typical Usage

For a single string:

   s := reverso.Transform("Hello, World!")   // "Olleh, Dlrow!"

For streams of text, a Reverser offers a transform.Transformer:

   rv := reverso.New()
   r := transform.NewReader(os.Stdin, rv.Transformer())
   io.Copy(os.Stdout, r)

All functions of this package are safe for concurrent use.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The root package holds the Reverser. Sub-packages provide the building
blocks: package casing classifies code-points by case, package letters
decides which code-points are letters, and package runs splits text into
runs of letters and non-letters.
*/
package reverso

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
