package fuzztests

import (
	"math"
	"testing"

	"shunt/internal/eval"
	"shunt/internal/lexer"
	"shunt/internal/postfix"
	"shunt/internal/testkit"
)

const maxFuzzInput = 1 << 12

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := string(clamp(input))
		toks, err := lexer.Tokenize(src, lexer.Options{})
		if err != nil {
			if ierr := testkit.CheckErrorInvariants(src, err); ierr != nil {
				t.Fatal(ierr)
			}
			return
		}
		if ierr := testkit.CheckTokenInvariants(src, toks); ierr != nil {
			t.Fatal(ierr)
		}
	})
}

func FuzzPipeline(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := string(clamp(input))
		v, err := run(src, 64)
		if err != nil {
			if ierr := testkit.CheckErrorInvariants(src, err); ierr != nil {
				t.Fatal(ierr)
			}
			return
		}

		// wrapping in parentheses never changes the value
		w, err := run("("+src+")", 65)
		if err != nil {
			t.Fatalf("(%s) failed while %s succeeded: %v", src, src, err)
		}
		if math.IsNaN(v) != math.IsNaN(w) || !math.IsNaN(v) && v != w {
			t.Fatalf("(%s) = %v, %s = %v", src, w, src, v)
		}
	})
}

func run(src string, depth int) (float64, error) {
	toks, err := lexer.Tokenize(src, lexer.Options{})
	if err != nil {
		return 0, err
	}
	post, err := postfix.Convert(toks, postfix.Options{MaxDepth: depth})
	if err != nil {
		return 0, err
	}
	return eval.Evaluate(post, eval.Options{})
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return input[:maxFuzzInput]
	}
	return input
}
