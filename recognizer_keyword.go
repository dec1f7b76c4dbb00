package phpfront

// ConfigKeywordRecognizer matches the given reserved words when they are not
// the prefix of a longer name.
func ConfigKeywordRecognizer(names []string) Recognizer {
	return func(r *Reader, state *LexState) (*Token, error) {
		for _, name := range names {
			n := len([]rune(name))
			if r.PeekN(n) != name || isNameChar(r.PeekAt(n)) {
				continue
			}
			k, ok := KeywordForName(name)
			if !ok {
				continue
			}
			r.ForwardN(n)
			return &Token{Type: KEYWORD, Value: name, Keyword: k}, nil
		}
		return nil, nil
	}
}
