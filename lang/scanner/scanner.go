// Package scanner implements the tokenizer: it segments a postl source
// string into numbers, strings, words, preprocessor commands and symbols,
// tracking brace nesting as it goes.
//
// The scanning loop (advance/peek over a rune cursor, a big switch in scan
// dispatching on the current character class) follows the shape of
// go/scanner. postl has no multi-file compilation unit and no parser
// consuming positioned tokens, so there is no token.FileSet/token.Position
// machinery here; errors report a byte offset into the single source string
// instead.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/mna/postl/lang/token"
)

// Error is a tokenization diagnostic, carrying the byte offset into the
// source string where the problem was detected.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("postl: tokenizer: offset %d: %s", e.Offset, e.Msg)
}

// Scanner tokenizes a postl source string one token at a time.
type Scanner struct {
	src string

	cur  rune // current character, -1 at end of input
	off  int  // byte offset of cur
	roff int  // byte offset just past cur

	braceDepth int // unmatched '{' seen so far, for the final balance check
}

// New returns a Scanner positioned at the start of src.
func New(src string) *Scanner {
	s := &Scanner{src: src}
	s.advance()
	return s
}

func (s *Scanner) peekByte() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}
	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRuneInString(s.src[s.roff:])
	}
	s.roff += w
	s.cur = r
}

func (s *Scanner) errorf(off int, format string, args ...any) error {
	return &Error{Offset: off, Msg: fmt.Sprintf(format, args...)}
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isWordChar(r rune) bool {
	return isLetter(r) || isDigit(r)
}
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Tokenize scans the entirety of src and returns its tokens, or the first
// error encountered. A tokenizer is a pure function of its input: two calls
// with the same src always produce the same result.
func Tokenize(src string) ([]token.Token, error) {
	s := New(src)
	var toks []token.Token
	for {
		tok, ok, err := s.scan()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	if s.braceDepth > 0 {
		return nil, s.errorf(len(src), "unbalanced braces: %d unclosed '{'", s.braceDepth)
	}
	return toks, nil
}

// scan returns the next token, or ok=false at end of input.
func (s *Scanner) scan() (token.Token, bool, error) {
	for isWhitespace(s.cur) {
		s.advance()
	}
	if s.cur == '#' {
		for s.cur != '\n' && s.cur != -1 {
			s.advance()
		}
		return s.scan()
	}
	if s.cur == -1 {
		return token.Token{}, false, nil
	}

	start := s.off
	switch {
	case isDigit(s.cur) || (s.cur == '-' && isDigit(rune(s.peekByte()))):
		lit, err := s.scanNumber()
		if err != nil {
			return token.Token{}, false, err
		}
		return token.Token{Kind: token.NUM, Text: lit}, true, nil

	case s.cur == '"':
		lit, err := s.scanString()
		if err != nil {
			return token.Token{}, false, err
		}
		return token.Token{Kind: token.STR, Text: lit}, true, nil

	case isLetter(s.cur):
		lit := s.scanWord()
		return token.Token{Kind: token.WORD, Text: lit}, true, nil

	case s.cur == '@':
		s.advance()
		if !isLetter(s.cur) {
			return token.Token{}, false, s.errorf(start, "isolated '@' is not a valid preprocessor command")
		}
		lit := s.scanWord()
		return token.Token{Kind: token.PPC, Text: lit}, true, nil

	default:
		r := s.cur
		s.advance()
		switch r {
		case '{':
			s.braceDepth++
		case '}':
			s.braceDepth--
			if s.braceDepth < 0 {
				return token.Token{}, false, s.errorf(start, "unbalanced braces: '}' without matching '{'")
			}
		}
		return token.Token{Kind: token.SYMBOL, Text: string(r)}, true, nil
	}
}

func (s *Scanner) scanWord() string {
	start := s.off
	for isWordChar(s.cur) {
		s.advance()
	}
	return s.src[start:s.off]
}
