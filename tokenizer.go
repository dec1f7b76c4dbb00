package phpfront

// Tokenizer drives a Reader through an ordered list of recognizers.
type Tokenizer struct {
	Reader      *Reader
	State       LexState
	Recognizers []Recognizer
	Tokens      []Token
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		Reader:      NewReader(source),
		Recognizers: make([]Recognizer, 0),
	}
}

func NewTokenizerWithReader(r *Reader) *Tokenizer {
	return &Tokenizer{
		Reader:      r,
		Recognizers: make([]Recognizer, 0),
	}
}

func (tz *Tokenizer) AddRecognizer(r Recognizer) {
	tz.Recognizers = append(tz.Recognizers, r)
}

func (tz *Tokenizer) AddRecognizers(rs ...Recognizer) {
	tz.Recognizers = append(tz.Recognizers, rs...)
}

func (tz *Tokenizer) match() (*Token, error) {
	for _, recognize := range tz.Recognizers {
		t, err := recognize(tz.Reader, &tz.State)
		if err != nil {
			return nil, err
		}
		if t != nil {
			return t, nil
		}
	}
	return nil, nil
}

// Run consumes the whole input and returns the token sequence, always
// terminated by a single EOF token.
func (tz *Tokenizer) Run() ([]Token, error) {
	for !tz.Reader.IsEnd() {
		start := tz.Reader.Pos()

		t, err := tz.match()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, &LexError{Pos: start, Message: "no recognizer matched '" + string(tz.Reader.Peek()) + "'", Err: ErrNoRecognizer}
		}
		if tz.Reader.Offset() == start.Offset {
			return nil, &LexError{Pos: start, Message: t.Type.String() + " matched without consuming input", Err: ErrNoProgress}
		}
		if t.Type == WHITESPACE {
			continue
		}

		t.Pos = start
		tz.Tokens = append(tz.Tokens, *t)
	}

	tz.Tokens = append(tz.Tokens, Token{Type: EOF, Pos: tz.Reader.Pos()})
	return tz.Tokens, nil
}
