// Package types implements the tagged value model: a Value is one of
// Number, String or *Block.
//
// postl has exactly three value kinds and no operator-overloading
// protocol, so the interface here is deliberately narrow: String/Type for
// diagnostics and printing, Truthy for control flow, and Clone for the
// deep-copy-on-push discipline the stack's ownership rules require.
package types

// Value is the interface implemented by Number, String and *Block.
type Value interface {
	// String returns postl's "print" rendering of the value.
	String() string

	// Type names the value's kind, for error messages ("number", "string",
	// "block").
	Type() string

	// Truthy reports whether the value is considered true by control-flow
	// builtins: non-zero number, non-empty string, any block.
	Truthy() bool

	// Clone returns a deep copy of the value, so that pushing or popping never
	// aliases a Block's underlying Code across stack slots or function table
	// entries.
	Clone() Value
}

// Release is a no-op in this Go implementation: the garbage collector
// reclaims Number, String and Block storage once unreferenced, so there is
// no manual free step. It is kept as part of the public API (see
// lang/program.ReleaseValue) so that host code written against an
// explicit-ownership embedding contract still compiles and behaves
// correctly against this implementation.
func Release(Value) {}
