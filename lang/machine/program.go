// Package machine implements the evaluator: per-token dispatch over a stack
// machine, the block-capture sub-state, the builtin catalogue, and the
// def/gdef/scope discipline that ties user bindings to lexical scope.
//
// Dispatch is direct over the scanned token stream rather than a compiled
// bytecode stream: postl has no compilation stage, so the per-token switch
// here keys on token.Kind, and a single Program bundles the stack, function
// table, scope stack and capture sub-state in one place rather than
// splitting them across a thread/frame pair.
package machine

import (
	"context"

	"github.com/mna/postl/lang/funcs"
	"github.com/mna/postl/lang/scope"
	"github.com/mna/postl/lang/token"
	"github.com/mna/postl/lang/types"
)

// Builtin is a fixed primitive operation, resolved by exact name match as
// the fallback step of Call's resolution order.
type Builtin func(*Program) error

// Native is a host-registered callback, invoked with the Program it was
// registered on.
type Native = funcs.NativeFunc[*Program]

// CaptureState is the block-capture sub-state: either inactive, or
// accumulating tokens into Buffer with Depth counting unmatched '{' seen
// since capture began.
type CaptureState struct {
	Active bool
	Buffer []token.Token
	Depth  int
}

// Program is the interpreter's full execution state: operand stack,
// function table, scope stack and capture sub-state.
type Program struct {
	Stack   []types.Value
	Funcs   *funcs.Table[*Program]
	Scopes  scope.Stack
	Capture CaptureState

	// Stdout is where print/lf/stackdump write. Defaults to io.Discard-like
	// behavior if left nil; lang/program sets this from its Option(s).
	Stdout interface {
		WriteString(string) (int, error)
	}

	// Steps counts dispatched tokens, for the optional step-limit guard; see
	// lang/program's MaxSteps option.
	Steps uint64

	// MaxSteps, if non-zero, makes RunTokens fail once Steps would exceed it.
	// This is a host-side cooperative budget, not a language-level
	// suspension point: the interpreter still runs each dispatched token to
	// completion, it just refuses to start another one past the budget.
	MaxSteps uint64

	// Ctx, if set, is checked for cancellation before every dispatched
	// token, including those of nested block and user-code bodies. A
	// nil Ctx (the zero value) means no cancellation is possible, matching
	// the single-threaded, run-to-completion model when a host hasn't asked
	// for one.
	Ctx context.Context
}

// New returns a fresh Program: empty stack, empty function table, empty
// scope stack, capture inactive.
func New() *Program {
	return &Program{
		Funcs: funcs.NewTable[*Program](64),
	}
}

// Push appends v to the top of the stack. Internal callers move ownership
// in (no copy); the embedding surface in lang/program is responsible for
// cloning values supplied from outside, so a caller's own copy is
// unaffected by what the interpreter later does to it.
func (p *Program) Push(v types.Value) {
	p.Stack = append(p.Stack, v)
}

// Pop removes and returns the top of the stack.
func (p *Program) Pop() (types.Value, error) {
	if len(p.Stack) == 0 {
		return nil, errStackUnderflow
	}
	v := p.Stack[len(p.Stack)-1]
	p.Stack = p.Stack[:len(p.Stack)-1]
	return v, nil
}

// Peek returns the top of the stack without removing it.
func (p *Program) Peek() (types.Value, error) {
	if len(p.Stack) == 0 {
		return nil, errStackUnderflow
	}
	return p.Stack[len(p.Stack)-1], nil
}

// StackSize returns the current number of values on the stack.
func (p *Program) StackSize() int { return len(p.Stack) }

func (p *Program) write(s string) {
	if p.Stdout != nil {
		p.Stdout.WriteString(s)
	}
}
