package reverso_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/reverso"
	"github.com/npillmayer/reverso/letters"
	"golang.org/x/text/transform"
)

func ExampleTransform() {
	for _, s := range []string{"Cat", "houSe", "third-part", "won't've", "川山"} {
		fmt.Println(reverso.Transform(s))
	}
	// Output:
	// Tac
	// esuOh
	// driht-trap
	// now't'ev
	// 山川
}

func ExampleReverser_Transformer() {
	rv := reverso.New(reverso.WithLetters(letters.LetterSet()))
	r := transform.NewReader(strings.NewReader("Hello, World!\n"), rv.Transformer())
	if _, err := io.Copy(os.Stdout, r); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Olleh, Dlrow!
}
