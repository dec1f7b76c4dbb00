package phpfront

func ConfigSymbolRecognizer(symbol rune, tokenType TokenType) Recognizer {
	return func(r *Reader, state *LexState) (*Token, error) {
		if r.Peek() != symbol {
			return nil, nil
		}
		r.Forward()
		return &Token{Type: tokenType}, nil
	}
}

// DiscardRecognizer claims any single character as whitespace. It must be
// registered last.
func DiscardRecognizer(r *Reader, state *LexState) (*Token, error) {
	r.Forward()
	return &Token{Type: WHITESPACE}, nil
}
