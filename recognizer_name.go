package phpfront

func isNameStart(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isNameChar(c rune) bool {
	return isNameStart(c) || isDigit(c) || c == '$'
}

// VariableRecognizer matches $name. The token value omits the '$'.
func VariableRecognizer(r *Reader, state *LexState) (*Token, error) {
	if r.Peek() != '$' {
		return nil, nil
	}
	s := r.PeekWhile(1, isNameChar)
	r.ForwardN(len([]rune(s)) + 1)
	return &Token{Type: VARIABLE, Value: s}, nil
}

// IdentifierRecognizer matches a bare name. The grammar only has bare names
// in function position.
func IdentifierRecognizer(r *Reader, state *LexState) (*Token, error) {
	if !isNameStart(r.Peek()) {
		return nil, nil
	}
	s := r.PeekWhile(0, isNameChar)
	r.ForwardN(len([]rune(s)))
	return &Token{Type: FUNCTION_NAME, Value: s}, nil
}
