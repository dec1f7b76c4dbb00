package phpfront

// TokenReader is a forward-only cursor over a finished token sequence.
type TokenReader struct {
	tokens []Token
	pos    int
}

func NewTokenReader(tokens []Token) *TokenReader {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: EOF})
	}
	return &TokenReader{tokens: tokens}
}

func (tr *TokenReader) Peek() Token {
	return tr.PeekAt(0)
}

// PeekAt never reads past the trailing EOF token.
func (tr *TokenReader) PeekAt(offset int) Token {
	i := tr.pos + offset
	if i >= len(tr.tokens) {
		i = len(tr.tokens) - 1
	}
	return tr.tokens[i]
}

func (tr *TokenReader) Next() Token {
	t := tr.Peek()
	if tr.pos < len(tr.tokens)-1 {
		tr.pos++
	}
	return t
}

func (tr *TokenReader) Position() int {
	return tr.pos
}
