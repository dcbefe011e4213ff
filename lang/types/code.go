package types

import "github.com/mna/postl/lang/token"

// Code is an ordered, owned sequence of tokens, the body of a Block or of a
// user-defined function-table entry.
type Code struct {
	Tokens []token.Token
}

// Clone returns a deep copy of c: a Block's Code must never alias another
// Block's or function entry's token slice. A Block value always owns its
// Code, deep-copied whenever it crosses the embedding boundary onto the
// stack from outside.
func (c Code) Clone() Code {
	cp := make([]token.Token, len(c.Tokens))
	copy(cp, c.Tokens)
	return Code{Tokens: cp}
}
