package phpfront

// Builder turns a token sequence into a Node tree by recursive descent.
type Builder struct {
	tokens *TokenReader
}

func NewBuilder(tokens []Token) *Builder {
	return &Builder{tokens: NewTokenReader(tokens)}
}

func Parse(tokens []Token) (*Node, error) {
	return NewBuilder(tokens).Build()
}

// ParseSource tokenizes a whole file with the default recognizers and parses it.
func ParseSource(source string) (*Node, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (b *Builder) unexpected(rule string, expected string) error {
	return &ParseError{Token: b.tokens.Peek(), Rule: rule, Expected: expected}
}

func (b *Builder) expect(tokenType TokenType, rule string, expected string) (Token, error) {
	if b.tokens.Peek().Type != tokenType {
		return Token{}, b.unexpected(rule, expected)
	}
	return b.tokens.Next(), nil
}

func (b *Builder) Build() (*Node, error) {
	if b.tokens.Peek().Type == START {
		b.tokens.Next()
	}
	n, err := b.BuildCodeBlock()
	if err != nil {
		return nil, err
	}
	if b.tokens.Peek().Type != EOF {
		return nil, b.unexpected("code block", "end of input")
	}
	return n, nil
}

// BuildCodeBlock stops before EOF or '}' without consuming it.
func (b *Builder) BuildCodeBlock() (*Node, error) {
	n := NewNode(NODE_CODE_BLOCK)
	for {
		switch b.tokens.Peek().Type {
		case EOF, BLOCK_CLOSE:
			return n, nil
		}
		child, err := b.BuildStmt()
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
}

func (b *Builder) BuildStmt() (*Node, error) {
	n := NewNode(NODE_STMT)

	if t := b.tokens.Peek(); t.Type == KEYWORD && t.Keyword == KEYWORD_FUNCTION {
		child, err := b.BuildStmtFn()
		if err != nil {
			return nil, err
		}
		n.Add(child)
		return n, nil
	}

	child, err := b.BuildStmtExp()
	if err != nil {
		return nil, err
	}
	n.Add(child)

	if _, err := b.expect(SEMICOLON, "statement", "';'"); err != nil {
		return nil, err
	}
	return n, nil
}

// BuildStmtFn parses "function name($a, ...) { ... }" into
// [keyword, name, arg list, code block].
func (b *Builder) BuildStmtFn() (*Node, error) {
	n := NewNode(NODE_FN)
	n.Add(NewLeaf(b.tokens.Next()))

	name, err := b.expect(FUNCTION_NAME, "function definition", "function name")
	if err != nil {
		return nil, err
	}
	n.Add(NewLeaf(name))

	params, err := b.BuildArgList()
	if err != nil {
		return nil, err
	}
	n.Add(params)

	if _, err := b.expect(BLOCK_OPEN, "function definition", "'{'"); err != nil {
		return nil, err
	}
	body, err := b.BuildCodeBlock()
	if err != nil {
		return nil, err
	}
	n.Add(body)

	if _, err := b.expect(BLOCK_CLOSE, "function definition", "'}'"); err != nil {
		return nil, err
	}
	return n, nil
}

// BuildArgList parses a declaration parameter list.
func (b *Builder) BuildArgList() (*Node, error) {
	n := NewNode(NODE_ARG_LIST)

	if _, err := b.expect(PAREN_OPEN, "parameter list", "'('"); err != nil {
		return nil, err
	}

	for {
		switch b.tokens.Peek().Type {
		case VARIABLE:
			n.Add(NewLeaf(b.tokens.Next()))
		case COMMA:
			b.tokens.Next()
		case PAREN_CLOSE:
			b.tokens.Next()
			return n, nil
		default:
			return nil, b.unexpected("parameter list", "variable name or ')'")
		}
	}
}
