package types

import (
	"strings"

	"github.com/mna/postl/lang/token"
)

// Block is a first-class deferred code value produced by "{ ... }". It
// always owns its Code; see Code.Clone for the deep-copy discipline.
type Block struct {
	Code Code
}

var _ Value = (*Block)(nil)

// NewBlock wraps code into a Block, taking ownership of it without copying
// (used when a Block is constructed directly from a freshly captured
// buffer — a move, not a copy).
func NewBlock(code Code) *Block { return &Block{Code: code} }

func (*Block) Type() string   { return "block" }
func (*Block) Truthy() bool   { return true }
func (b *Block) Clone() Value { return &Block{Code: b.Code.Clone()} }

// String renders the block the way postl's original pprint does: braces
// around the space-separated token text, with string tokens pretty-quoted.
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, t := range b.Code.Tokens {
		if t.Kind == token.STR {
			sb.WriteString(String(t.Text).Pretty())
		} else {
			sb.WriteString(t.Text)
		}
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
	return sb.String()
}
