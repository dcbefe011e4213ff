package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/postl/lang/token"
	"github.com/mna/postl/lang/types"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "3", types.Number(3).String())
	assert.Equal(t, "number", types.Number(0).Type())
	assert.False(t, types.Number(0).Truthy())
	assert.True(t, types.Number(-1).Truthy())
}

func TestString(t *testing.T) {
	assert.Equal(t, "hi", types.String("hi").String())
	assert.False(t, types.String("").Truthy())
	assert.True(t, types.String("x").Truthy())
	assert.Equal(t, `"a\nb\"c\x01"`, types.String("a\nb\"c\x01").Pretty())
}

func TestBlockCloneIsDeep(t *testing.T) {
	code := types.Code{Tokens: []token.Token{{Kind: token.NUM, Text: "1"}}}
	b := types.NewBlock(code)
	clone := b.Clone().(*types.Block)

	clone.Code.Tokens[0].Text = "2"
	assert.Equal(t, "1", b.Code.Tokens[0].Text, "clone must not alias the original token slice")
}

func TestBlockString(t *testing.T) {
	code := types.Code{Tokens: []token.Token{
		{Kind: token.NUM, Text: "1"},
		{Kind: token.STR, Text: "hi"},
		{Kind: token.WORD, Text: "dup"},
	}}
	b := types.NewBlock(code)
	assert.Equal(t, `{ 1 "hi" dup }`, b.String())
}
