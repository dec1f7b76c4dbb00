package precedence

import (
	"github.com/JeffThomas/lexx"
	"github.com/JeffThomas/lexx/matchers"
	"github.com/alecthomas/participle/v2/lexer"

	"phpfront"
)

type ParseEnvironment struct {
	Lexx          *lexx.Lexx
	PrefixParsers []PrefixParsletMatch
	InfixParsers  []InfixParsletMatch
	Line          int
	Column        int
	Script        string
	// set once the lexer has handed out its EOF token
	EOF bool
}

func (pe *ParseEnvironment) AddPrefixParser(parslet PrefixParsletMatch) {
	pe.PrefixParsers = append(pe.PrefixParsers, parslet)
}

func (pe *ParseEnvironment) AddInfixParser(parslet InfixParsletMatch) {
	pe.InfixParsers = append(pe.InfixParsers, parslet)
}

// Token converts the lexer's current token into a phpfront token.
func (pe *ParseEnvironment) Token(t *matchers.Token) *phpfront.Token {
	tokenType := phpfront.OPERATOR
	if t.Type == matchers.INTEGER {
		tokenType = phpfront.NUMBER
	}
	return &phpfront.Token{
		Type:  tokenType,
		Value: t.Value,
		Pos:   lexer.Position{Filename: pe.Script, Line: t.Line, Column: t.Column},
	}
}

func NewParseEnvironment(lex *lexx.Lexx) *ParseEnvironment {
	return &ParseEnvironment{
		PrefixParsers: make([]PrefixParsletMatch, 0),
		InfixParsers:  make([]InfixParsletMatch, 0),
		Lexx:          lex,
	}
}
