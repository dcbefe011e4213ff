package machine

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/mna/postl/lang/token"
	"github.com/mna/postl/lang/types"
)

// builtins is the fixed registry of primitive operations, resolved by exact
// name match as the fallback step of Call's resolution order. It is
// process-global and immutable once initialized; it is filled once, from
// the package's init, through a sync.Once that keeps initialization
// idempotent. A function is used rather than a package var initializer because several
// entries (the math unary/binary table) are built programmatically from a
// name list instead of being literal map keys.
var (
	builtinsOnce sync.Once
	builtins     map[string]Builtin
)

func init() {
	builtinsOnce.Do(initBuiltins)
}

func initBuiltins() {
	builtins = map[string]Builtin{
		"+":         biAdd,
		"-":         biArith(func(a, b float64) float64 { return a - b }),
		"*":         biArith(func(a, b float64) float64 { return a * b }),
		"/":         biArith(func(a, b float64) float64 { return a / b }),
		"%":         biArith(floorMod),
		"=":         biCompare(func(a, b float64) bool { return a == b }),
		">":         biCompare(func(a, b float64) bool { return a > b }),
		"<":         biCompare(func(a, b float64) bool { return a < b }),
		"!":         biNot,
		"print":     biPrint,
		"lf":        biLF,
		"{":         biCapture,
		"def":       biDef,
		"gdef":      biGdef,
		"eval":      biEval,
		"builtin":   biBuiltin,
		"swap":      biSwap,
		"dup":       biDup,
		"pop":       biPop,
		"roll":      biRoll,
		"rotate":    biRotate,
		"if":        biIf,
		"while":     biWhile,
		"ifelse":    biIfelse,
		"stacksize": biStacksize,
		"stackdump": biStackdump,

		"E":  biConst(math.E),
		"PI": biConst(math.Pi),

		token.ScopeEnter: biScopeEnter,
		token.ScopeLeave: biScopeLeave,
	}
	for name, fn := range mathUnary {
		builtins[name] = biMathUnary(fn)
	}
	for name, fn := range mathBinary {
		builtins[name] = biMathBinary(fn)
	}
}

func popNumber(p *Program, what string) (float64, error) {
	v, err := p.Pop()
	if err != nil {
		return 0, err
	}
	n, ok := v.(types.Number)
	if !ok {
		return 0, &typeError{Msg: what + " requires a number, got " + v.Type()}
	}
	return float64(n), nil
}

func popString(p *Program, what string) (string, error) {
	v, err := p.Pop()
	if err != nil {
		return "", err
	}
	s, ok := v.(types.String)
	if !ok {
		return "", &typeError{Msg: what + " requires a string, got " + v.Type()}
	}
	return string(s), nil
}

func popBlock(p *Program, what string) (*types.Block, error) {
	v, err := p.Pop()
	if err != nil {
		return nil, err
	}
	b, ok := v.(*types.Block)
	if !ok {
		return nil, &typeError{Msg: what + " requires a block, got " + v.Type()}
	}
	return b, nil
}

func pushBool(p *Program, b bool) {
	if b {
		p.Push(types.Number(1))
	} else {
		p.Push(types.Number(0))
	}
}

// biAdd implements "+": numbers add, strings concatenate, anything else (or
// a tag mismatch) is an error — blocks are never addable under the
// arithmetic-plus rule.
func biAdd(p *Program) error {
	b, err := p.Pop()
	if err != nil {
		return err
	}
	a, err := p.Pop()
	if err != nil {
		return err
	}
	switch av := a.(type) {
	case types.Number:
		bv, ok := b.(types.Number)
		if !ok {
			return &typeError{Msg: "+ requires matching operand tags"}
		}
		p.Push(av + bv)
		return nil
	case types.String:
		bv, ok := b.(types.String)
		if !ok {
			return &typeError{Msg: "+ requires matching operand tags"}
		}
		p.Push(av + bv)
		return nil
	default:
		return &typeError{Msg: "+ does not support " + a.Type() + " operands"}
	}
}

// biArith builds a binary numeric builtin for -, *, /, %: both operands are
// released regardless of outcome (Go's GC makes the release implicit), and
// the op function is applied with the deeper operand first, shallower
// second, i.e. "a b -" computes a-b.
func biArith(op func(a, b float64) float64) Builtin {
	return func(p *Program) error {
		b, err := popNumber(p, "arithmetic")
		if err != nil {
			return err
		}
		a, err := popNumber(p, "arithmetic")
		if err != nil {
			return err
		}
		p.Push(types.Number(op(a, b)))
		return nil
	}
}

// floorMod implements signed-floor modulo:
// sign(a)*(|a| - |b|*floor(|a|/|b|)). Division by zero yields NaN, not an
// error.
func floorMod(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	aa, ab := math.Abs(a), math.Abs(b)
	m := aa - ab*math.Floor(aa/ab)
	if a < 0 {
		return -m
	}
	return m
}

func biCompare(op func(a, b float64) bool) Builtin {
	return func(p *Program) error {
		b, err := popNumber(p, "comparison")
		if err != nil {
			return err
		}
		a, err := popNumber(p, "comparison")
		if err != nil {
			return err
		}
		pushBool(p, op(a, b))
		return nil
	}
}

func biNot(p *Program) error {
	v, err := p.Pop()
	if err != nil {
		return err
	}
	pushBool(p, !v.Truthy())
	return nil
}

func biPrint(p *Program) error {
	v, err := p.Pop()
	if err != nil {
		return err
	}
	switch vv := v.(type) {
	case types.Number:
		p.write(fmt.Sprintf("%g", float64(vv)))
	case types.String:
		p.write(string(vv))
	case *types.Block:
		p.write(vv.String())
	}
	return nil
}

func biLF(p *Program) error {
	p.write("\n")
	return nil
}

func biCapture(p *Program) error {
	beginCapture(p)
	return nil
}

// biDef implements scope-aware definition semantics: the
// name is on top, the value beneath it.
func biDef(p *Program) error { return doDef(p, false) }

// biGdef implements "gdef": identical binding mechanics but never recorded
// in a scope frame, so the binding outlives the enclosing block.
func biGdef(p *Program) error { return doDef(p, true) }

func doDef(p *Program, global bool) error {
	name, err := popString(p, "def")
	if err != nil {
		return err
	}
	v, err := p.Pop()
	if err != nil {
		return err
	}

	if !global {
		inScope := !p.Scopes.Empty() && p.Scopes.TopContains(name)
		if inScope || p.Scopes.Empty() {
			p.Funcs.UnbindHead(name)
		} else {
			p.Scopes.Record(name)
		}
	}
	p.Funcs.BindShadowCode(name, bodyOf(v))
	return nil
}

// bodyOf turns a definition's value into the Code a function-table entry
// runs: a block transfers its code directly, a number or string literal is
// synthesized as a single-token body that pushes it back.
func bodyOf(v types.Value) types.Code {
	switch vv := v.(type) {
	case *types.Block:
		return vv.Code
	case types.Number:
		return types.Code{Tokens: []token.Token{{Kind: token.NUM, Text: vv.String()}}}
	case types.String:
		return types.Code{Tokens: []token.Token{{Kind: token.STR, Text: string(vv)}}}
	default:
		return types.Code{}
	}
}

func biEval(p *Program) error {
	b, err := popBlock(p, "eval")
	if err != nil {
		return err
	}
	return RunTokens(p, b.Code.Tokens)
}

// biBuiltin implements "builtin": invoke a named fixed primitive directly,
// bypassing any user/native shadow, '{' and '}' are
// explicitly disallowed even though '{' is itself a builtin, because
// invoking it this way would desynchronize capture state from the token
// stream driving it.
func biBuiltin(p *Program) error {
	name, err := popString(p, "builtin")
	if err != nil {
		return err
	}
	if name == "{" || name == "}" {
		return &unknownBuiltinError{Name: name}
	}
	b, ok := builtins[name]
	if !ok {
		return &unknownBuiltinError{Name: name}
	}
	return b(p)
}

func biSwap(p *Program) error {
	b, err := p.Pop()
	if err != nil {
		return err
	}
	a, err := p.Pop()
	if err != nil {
		return err
	}
	p.Push(b)
	p.Push(a)
	return nil
}

func biDup(p *Program) error {
	v, err := p.Peek()
	if err != nil {
		return err
	}
	p.Push(v.Clone())
	return nil
}

func biPop(p *Program) error {
	_, err := p.Pop()
	return err
}

func biStacksize(p *Program) error {
	p.Push(types.Number(p.StackSize()))
	return nil
}

func biStackdump(p *Program) error {
	var sb strings.Builder
	for i := len(p.Stack) - 1; i >= 0; i-- {
		if i != len(p.Stack)-1 {
			sb.WriteString("  ")
		}
		switch v := p.Stack[i].(type) {
		case types.String:
			sb.WriteString(v.Pretty())
		default:
			sb.WriteString(v.String())
		}
	}
	sb.WriteByte('\n')
	p.write(sb.String())
	return nil
}

func biConst(f float64) Builtin {
	return func(p *Program) error {
		p.Push(types.Number(f))
		return nil
	}
}

func biIf(p *Program) error {
	b, err := popBlock(p, "if")
	if err != nil {
		return err
	}
	cond, err := p.Pop()
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return RunTokens(p, b.Code.Tokens)
	}
	return nil
}

func biIfelse(p *Program) error {
	elseB, err := popBlock(p, "ifelse")
	if err != nil {
		return err
	}
	thenB, err := popBlock(p, "ifelse")
	if err != nil {
		return err
	}
	cond, err := p.Pop()
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return RunTokens(p, thenB.Code.Tokens)
	}
	return RunTokens(p, elseB.Code.Tokens)
}

// biWhile implements "while": body then condition block are both popped
// once, before the loop starts. Each turn runs the condition block (which
// must leave a fresh value on top of the stack), pops that value, and
// stops if it's falsy; otherwise it runs the body and repeats. The
// condition block is responsible for regenerating its own inputs each
// turn (typically by starting with a "dup" of whatever it's testing).
func biWhile(p *Program) error {
	body, err := popBlock(p, "while")
	if err != nil {
		return err
	}
	cond, err := popBlock(p, "while")
	if err != nil {
		return err
	}
	for {
		if err := RunTokens(p, cond.Code.Tokens); err != nil {
			return err
		}
		v, err := p.Pop()
		if err != nil {
			return err
		}
		if !v.Truthy() {
			return nil
		}
		if err := RunTokens(p, body.Code.Tokens); err != nil {
			return err
		}
	}
}

func biScopeEnter(p *Program) error {
	p.Scopes.Enter()
	return nil
}

func biScopeLeave(p *Program) error {
	names, err := p.Scopes.Leave()
	if err != nil {
		return errEmptyScopeStack
	}
	for _, name := range names {
		p.Funcs.UnbindHead(name)
	}
	return nil
}
