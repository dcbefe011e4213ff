package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/postl/lang/scanner"
	"github.com/mna/postl/lang/token"
)

func toks(kindsAndText ...any) []token.Token {
	var out []token.Token
	for i := 0; i < len(kindsAndText); i += 2 {
		out = append(out, token.Token{Kind: kindsAndText[i].(token.Kind), Text: kindsAndText[i+1].(string)})
	}
	return out
}

func TestTokenizeBasics(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token.Token
	}{
		{"numbers", "1 2.5 -3", toks(token.NUM, "1", token.NUM, "2.5", token.NUM, "-3")},
		{"minus-space-is-two-tokens", "- 3", toks(token.SYMBOL, "-", token.NUM, "3")},
		{"string", `"hello world"`, toks(token.STR, "hello world")},
		{"string-escapes", `"a\nb\tc\\d\"e"`, toks(token.STR, "a\nb\tc\\d\"e")},
		{"word", "dup swap", toks(token.WORD, "dup", token.WORD, "swap")},
		{"ppc", "@foo", toks(token.PPC, "foo")},
		{"symbol", "+ { }", toks(token.SYMBOL, "+", token.SYMBOL, "{", token.SYMBOL, "}")},
		{"comment", "1 # trailing comment\n2", toks(token.NUM, "1", token.NUM, "2")},
		{"empty", "", nil},
		{"whitespace-only", "  \t\n ", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := scanner.Tokenize(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unterminated-string", `"abc`},
		{"isolated-at", "@ foo"},
		{"unbalanced-open", "{ 1"},
		{"unbalanced-close", "1 }"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := scanner.Tokenize(c.src)
			require.Error(t, err)
		})
	}
}

func TestTokenizeIsPure(t *testing.T) {
	src := `1 2 + "hi\n" { dup } @ppc`
	a, errA := scanner.Tokenize(src)
	b, errB := scanner.Tokenize(src)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestNumberRejectsOverflow(t *testing.T) {
	_, err := scanner.Tokenize("1e400")
	require.Error(t, err)
}
