// Package program is the embedding surface: New constructs a Program from
// functional Options, a host registers native functions on it, then calls
// RunSource to tokenize and evaluate postl source against it.
package program

import (
	"context"
	"io"
	"os"

	"github.com/mna/postl/lang/machine"
	"github.com/mna/postl/lang/scanner"
	"github.com/mna/postl/lang/types"
)

// Program is the host-facing embedding of the evaluator.
type Program struct {
	stdout, stderr io.Writer
	maxSteps       uint64
	maxStepsSet    bool

	m *machine.Program
}

// New constructs a Program, applying opts over the environment-sourced
// defaults (see config.go).
func New(opts ...Option) *Program {
	p := &Program{}
	for _, opt := range opts {
		opt(p)
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}
	if !p.maxStepsSet {
		p.maxSteps = loadConfig().MaxSteps
	}

	p.m = machine.New()
	p.m.Stdout = writerAdapter{p.stdout}
	p.m.MaxSteps = p.maxSteps
	return p
}

// Close releases any resources held by the Program. The evaluator itself
// holds nothing that outlives garbage collection; Close exists so an
// embedder can rely on a symmetric create/destroy pair regardless of
// implementation, per the embedding contract.
func (p *Program) Close() error { return nil }

// writerAdapter satisfies machine.Program's WriteString-only Stdout
// interface from an arbitrary io.Writer, so the embedding surface can
// accept any writer a host already has on hand.
type writerAdapter struct{ w io.Writer }

func (a writerAdapter) WriteString(s string) (int, error) { return io.WriteString(a.w, s) }

// RegisterNative binds name to fn in the function table, as though a
// script had just executed `{ ... } "name" def` with a host callback
// body. It must be called before RunSource if the script is expected to
// call name, since there is no forward declaration: lookups are
// first-match at call time.
func (p *Program) RegisterNative(name string, fn machine.Native) {
	p.m.Funcs.BindShadowNative(name, fn)
}

// RunSource tokenizes source and evaluates it against the program's
// current state. ctx, if non-nil, is checked for cancellation between
// dispatched tokens; a nil ctx runs unbounded except for the configured
// step budget.
//
// RunSource always leaves capture state inactive: an unterminated '{' in
// source is a tokenizer/evaluator error, never a state RunSource can
// return successfully with open.
func (p *Program) RunSource(ctx context.Context, source string) error {
	toks, err := scanner.Tokenize(source)
	if err != nil {
		return err
	}
	p.m.Ctx = ctx
	return machine.RunTokens(p.m, toks)
}

// StackSize returns the number of values currently on the operand stack.
func (p *Program) StackSize() int { return p.m.StackSize() }

// Push places a deep copy of v on top of the stack, so that whatever the
// script later does to it (including a Block rebinding its own captured
// code) never reaches back into the caller's value.
func (p *Program) Push(v types.Value) { p.m.Push(v.Clone()) }

// Pushes pushes each value in vs in order, front to back, each as its
// own deep copy (see Push).
func (p *Program) Pushes(vs []types.Value) {
	for _, v := range vs {
		p.Push(v)
	}
}

// Pop removes and returns the top of the stack.
func (p *Program) Pop() (types.Value, error) { return p.m.Pop() }

// ReleaseValue is a no-op hook kept for hosts written against an
// explicit-ownership embedding contract; see types.Release.
func (p *Program) ReleaseValue(v types.Value) { types.Release(v) }

// MakeNumber returns a postl number value wrapping f.
func (p *Program) MakeNumber(f float64) types.Value { return types.Number(f) }

// MakeString returns a postl string value wrapping s.
func (p *Program) MakeString(s string) types.Value { return types.String(s) }

// CallFunction invokes name through the same resolution order as a WORD
// token would: function table, then builtins.
func (p *Program) CallFunction(name string) error { return machine.Call(p.m, name) }
