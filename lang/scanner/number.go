package scanner

import (
	"math"
	"strconv"
)

// scanNumber consumes a number lexeme: a digit, or '-' followed by a digit,
// initiates a number; it is then scanned greedily as a standard
// floating-point literal (optional fractional part, optional exponent).
// The lexeme is kept verbatim, to be re-parsed on execution.
//
// A zero-length parse can't actually happen here since scan() only calls
// scanNumber after confirming a leading digit (possibly after '-'). An
// out-of-range literal such as "1e400" is rejected through ParseFloat's
// range error; the NaN/Inf check below is a further guard on the result.
func (s *Scanner) scanNumber() (string, error) {
	start := s.off
	if s.cur == '-' {
		s.advance()
	}
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peekByte())) {
		s.advance()
		for isDigit(s.cur) {
			s.advance()
		}
	}
	if s.cur == 'e' || s.cur == 'E' {
		save := s.saveState()
		s.advance()
		if s.cur == '+' || s.cur == '-' {
			s.advance()
		}
		if isDigit(s.cur) {
			for isDigit(s.cur) {
				s.advance()
			}
		} else {
			// not actually an exponent, e.g. "1e" with no following digits.
			s.restoreState(save)
		}
	}

	lit := s.src[start:s.off]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return "", s.errorf(start, "invalid number literal %q: %v", lit, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", s.errorf(start, "number literal %q is out of range", lit)
	}
	return lit, nil
}

type scanState struct {
	cur  rune
	off  int
	roff int
}

func (s *Scanner) saveState() scanState {
	return scanState{cur: s.cur, off: s.off, roff: s.roff}
}

func (s *Scanner) restoreState(st scanState) {
	s.cur, s.off, s.roff = st.cur, st.off, st.roff
}
