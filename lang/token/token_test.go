package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/postl/lang/token"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		k    token.Kind
		want string
	}{
		{token.ILLEGAL, "illegal token"},
		{token.NUM, "number"},
		{token.STR, "string"},
		{token.WORD, "word"},
		{token.PPC, "preprocessor command"},
		{token.SYMBOL, "symbol"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.k.String())
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "42", token.Token{Kind: token.NUM, Text: "42"}.String())
	assert.Equal(t, `"hi"`, token.Token{Kind: token.STR, Text: "hi"}.String())
	assert.Equal(t, "dup", token.Token{Kind: token.WORD, Text: "dup"}.String())
	assert.Equal(t, "+", token.Token{Kind: token.SYMBOL, Text: "+"}.String())
}
