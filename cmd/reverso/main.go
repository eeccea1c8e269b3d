package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/reverso"
	"github.com/npillmayer/reverso/letters"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const HelpBanner = `
reverso: reverse the letters of words, keeping case and punctuation in place.
    Version: %s

Usage: reverso [flags] [word ...]

Without arguments, text is read from -in and written to -out.

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var errUnknownLetters = errors.New("unknown letter class")

// config holds the settings from the command line.
type config struct {
	letters string // letter class: alphabetic or letter
	trace   string // trace level
	in, out string // input and output file, "-" for stdin/stdout
}

func main() {
	log.SetFlags(0)

	cfg := config{}
	flag.StringVar(&cfg.letters, "letters", "alphabetic", "Letter class: 'alphabetic' or 'letter'")
	flag.StringVar(&cfg.trace, "trace", "error", "Trace level: 'error', 'info' or 'debug'")
	flag.StringVar(&cfg.in, "in", pipeName, "Source")
	flag.StringVar(&cfg.out, "out", pipeName, "Destination")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 && cfg.in == pipeName && term.IsTerminal(int(os.Stdin.Fd())) {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg, flag.Args()); err != nil {
		log.Printf("reverso: %v", err)
		os.Exit(1)
	}
}

func run(cfg config, args []string) error {
	gtrace.CoreTracer.SetTraceLevel(traceLevel(cfg.trace))
	set, err := letterSet(cfg.letters)
	if err != nil {
		return err
	}
	rv := reverso.New(reverso.WithLetters(set))

	var out io.Writer = os.Stdout
	if cfg.out != pipeName {
		f, err := os.Create(cfg.out)
		if err != nil {
			return fmt.Errorf("cannot create destination: %w", err)
		}
		defer f.Close()
		out = f
	}
	if len(args) > 0 {
		return transformArgs(rv, args, out)
	}
	var in io.Reader = os.Stdin
	if cfg.in != pipeName {
		f, err := os.Open(cfg.in)
		if err != nil {
			return fmt.Errorf("cannot open source: %w", err)
		}
		defer f.Close()
		in = f
	}
	return transformStream(rv, in, out)
}

// transformArgs transforms every argument and writes it on a line of its own.
func transformArgs(rv *reverso.Reverser, args []string, w io.Writer) error {
	for _, arg := range args {
		if _, err := fmt.Fprintln(w, rv.Transform(arg)); err != nil {
			return fmt.Errorf("cannot write result: %w", err)
		}
	}
	return nil
}

// transformStream copies r to w, reversing the letters of words.
func transformStream(rv *reverso.Reverser, r io.Reader, w io.Writer) error {
	if _, err := io.Copy(w, transform.NewReader(r, rv.Transformer())); err != nil {
		return fmt.Errorf("cannot transform input: %w", err)
	}
	return nil
}

func letterSet(name string) (runes.Set, error) {
	switch name {
	case "alphabetic", "":
		return letters.AlphabeticSet(), nil
	case "letter":
		return letters.LetterSet(), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownLetters, name)
}

func traceLevel(name string) tracing.TraceLevel {
	switch name {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
