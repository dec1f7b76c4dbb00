package phpfront

// StringRecognizer matches a single or double quoted string. There are no
// escapes: the literal ends at the next matching quote.
func StringRecognizer(r *Reader, state *LexState) (*Token, error) {
	quote := r.Peek()
	if quote != '"' && quote != '\'' {
		return nil, nil
	}
	start := r.Pos()
	s := r.PeekWhile(1, func(c rune) bool { return c != quote })
	if r.PeekAt(1+len([]rune(s))) != quote {
		return nil, &LexError{Pos: start, Message: "unterminated string literal", Err: ErrUnterminated}
	}
	r.ForwardN(len([]rune(s)) + 2)
	return &Token{Type: STRING, Value: s}, nil
}

// NumberRecognizer matches digits and dots. A leading '-' or '.' only starts
// a number when a digit follows and the previous character does not end an
// operand, so the minus in "1-3" is left to the operator recognizer.
func NumberRecognizer(r *Reader, state *LexState) (*Token, error) {
	c := r.Peek()
	if !isDigit(c) {
		if c != '-' && c != '.' || !isDigit(r.PeekAt(1)) || endsOperand(r.PeekAt(-1)) {
			return nil, nil
		}
	}
	s := string(c) + r.PeekWhile(1, func(c rune) bool { return isDigit(c) || c == '.' })
	r.ForwardN(len([]rune(s)))
	return &Token{Type: NUMBER, Value: s}, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func endsOperand(c rune) bool {
	return isNameChar(c) || c == ')' || c == '"' || c == '\''
}
