package phpfront

import "strings"

const OperatorChars = "+-*/%^=!.<>&|"

// AssignmentRecognizer matches '=' unless it starts "==".
func AssignmentRecognizer(r *Reader, state *LexState) (*Token, error) {
	if r.Peek() != '=' || r.PeekAt(1) == '=' {
		return nil, nil
	}
	r.Forward()
	return &Token{Type: ASSIGNMENT}, nil
}

// ConfigOperatorRecognizer matches the longest run of the given operator
// characters as one OPERATOR token.
func ConfigOperatorRecognizer(chars string) Recognizer {
	return func(r *Reader, state *LexState) (*Token, error) {
		s := r.PeekWhile(0, func(c rune) bool { return strings.ContainsRune(chars, c) })
		if s == "" {
			return nil, nil
		}
		r.ForwardN(len([]rune(s)))
		return &Token{Type: OPERATOR, Value: s}, nil
	}
}
