// Package funcs implements the function table: a mapping from name to a
// shadow chain of entries, most-recent binding first, backed by a swiss-table
// hash map.
//
// The table is generic over S, the program/machine state type a native
// callback receives, so this package has no dependency on lang/machine and
// cannot form an import cycle with it.
package funcs

import (
	"github.com/dolthub/swiss"

	"github.com/mna/postl/lang/types"
)

// NativeFunc is a host-registered callback, invoked with the executing
// program state S.
type NativeFunc[S any] func(S) error

// Entry is one binding for a name: either Native is set (a host callback)
// or Code holds a user-defined body, never both.
type Entry[S any] struct {
	Native NativeFunc[S]
	Code   types.Code
	Prev   *Entry[S] // the entry this one shadows, or nil
}

// IsNative reports whether this entry wraps a host-native callback rather
// than a user-code body.
func (e *Entry[S]) IsNative() bool { return e.Native != nil }

// Table is the function table: name -> shadow chain, head is active.
type Table[S any] struct {
	m *swiss.Map[string, *Entry[S]]
}

// NewTable returns an empty function table with initial capacity for size
// distinct names.
func NewTable[S any](size int) *Table[S] {
	return &Table[S]{m: swiss.NewMap[string, *Entry[S]](uint32(size))}
}

// Lookup returns the active (head) entry for name, if any.
func (t *Table[S]) Lookup(name string) (*Entry[S], bool) {
	return t.m.Get(name)
}

// BindShadowNative prepends a new native-callback entry for name on top of
// any existing binding.
func (t *Table[S]) BindShadowNative(name string, fn NativeFunc[S]) {
	prev, _ := t.m.Get(name)
	t.m.Put(name, &Entry[S]{Native: fn, Prev: prev})
}

// BindShadowCode prepends a new user-code entry for name on top of any
// existing binding, taking ownership of code without copying it.
func (t *Table[S]) BindShadowCode(name string, code types.Code) {
	prev, _ := t.m.Get(name)
	t.m.Put(name, &Entry[S]{Code: code, Prev: prev})
}

// UnbindHead removes the head entry for name, restoring whatever it
// shadowed (or removing the name entirely if there was nothing beneath
// it). It is a no-op if name has no binding.
func (t *Table[S]) UnbindHead(name string) {
	e, ok := t.m.Get(name)
	if !ok {
		return
	}
	if e.Prev != nil {
		t.m.Put(name, e.Prev)
	} else {
		t.m.Delete(name)
	}
}
