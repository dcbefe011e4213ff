package machine

import (
	"github.com/mna/postl/lang/token"
	"github.com/mna/postl/lang/types"
)

// beginCapture is invoked by the '{' builtin: it switches the program into
// block-capture mode with the synthetic scopeenter token already written.
// Block opening is itself a builtin for exactly this reason.
func beginCapture(p *Program) {
	p.Capture = CaptureState{
		Active: true,
		Buffer: []token.Token{{Kind: token.WORD, Text: token.ScopeEnter}},
		Depth:  1,
	}
}

// captureToken implements the block-capture pre-dispatch: every token is
// diverted here while capture is active, and never falls through to normal
// dispatch.
func captureToken(p *Program, t token.Token) error {
	if t.Kind == token.SYMBOL && t.Text == "}" && p.Capture.Depth == 1 {
		buf := append(p.Capture.Buffer, token.Token{Kind: token.WORD, Text: token.ScopeLeave})
		p.Push(types.NewBlock(types.Code{Tokens: buf}))
		p.Capture = CaptureState{}
		return nil
	}

	p.Capture.Buffer = append(p.Capture.Buffer, t)
	switch {
	case t.Kind == token.SYMBOL && t.Text == "{":
		p.Capture.Depth++
	case t.Kind == token.SYMBOL && t.Text == "}":
		p.Capture.Depth--
	}
	return nil
}
