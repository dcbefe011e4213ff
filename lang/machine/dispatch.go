package machine

import (
	"strconv"

	"github.com/mna/postl/lang/token"
	"github.com/mna/postl/lang/types"
)

// RunTokens dispatches toks one at a time. It is the re-entry point used
// both for top-level source and for evaluating a user/native body or block
// code: a user-defined body is just re-dispatched through the same loop.
//
// Every call checks Ctx (if set) and MaxSteps (if non-zero) before
// dispatching the next token, so a host-imposed budget or cancellation is
// honored even deep inside nested eval/while/user-code recursion, not just
// at the top level.
func RunTokens(p *Program, toks []token.Token) error {
	for _, t := range toks {
		if p.Ctx != nil {
			if err := p.Ctx.Err(); err != nil {
				return err
			}
		}
		if p.MaxSteps != 0 && p.Steps >= p.MaxSteps {
			return errStepBudgetExceeded
		}
		p.Steps++
		if err := Dispatch(p, t); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch processes a single token: the block-capture pre-dispatch runs
// first and, if capture is active, always consumes the token without
// falling through to normal dispatch.
func Dispatch(p *Program, t token.Token) error {
	if p.Capture.Active {
		return captureToken(p, t)
	}
	switch t.Kind {
	case token.NUM:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return &typeError{Msg: "invalid number literal " + strconv.Quote(t.Text)}
		}
		p.Push(types.Number(f))
		return nil
	case token.STR:
		p.Push(types.String(t.Text))
		return nil
	case token.PPC:
		return errPPCUnsupported
	case token.WORD, token.SYMBOL:
		return Call(p, t.Text)
	default:
		return &typeError{Msg: "illegal token " + strconv.Quote(t.Text)}
	}
}

// Call resolves name in fixed order: first the function table (user or
// native bindings, most recent shadow wins), then the fixed builtin
// registry, and finally a not-found diagnostic.
func Call(p *Program, name string) error {
	if e, ok := p.Funcs.Lookup(name); ok {
		if e.IsNative() {
			return e.Native(p)
		}
		return RunTokens(p, e.Code.Tokens)
	}
	if b, ok := builtins[name]; ok {
		return b(p)
	}
	return &notFoundError{Name: name}
}
