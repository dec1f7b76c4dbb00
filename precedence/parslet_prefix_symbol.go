package precedence

import (
	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

// symbolMatches reports whether t has tokenType and one of the listed
// values. A nil list accepts any value.
func symbolMatches(t *matchers.Token, tokenType matchers.TokenType, matches []string) bool {
	if t.Type != tokenType {
		return false
	}
	if matches == nil {
		return true
	}
	for _, s := range matches {
		if t.Value == s {
			return true
		}
	}
	return false
}

// PrefixSymbolParsletBuilder matches the listed prefix operators. The operand
// is parsed at precedenceLocal, so only tighter infix operators bind inside it.
func PrefixSymbolParsletBuilder(matches []string, tokenType matchers.TokenType, precedenceLocal PrecedenceType, build PrefixNodeBuilder) PrefixParsletMatch {
	parse := func(pe *ParseEnvironment, _ PrecedenceType) (*phpfront.Node, error) {
		op := pe.Token(pe.Lexx.Token)
		operand, err := ParseElement(pe, precedenceLocal)
		if err != nil {
			return nil, err
		}
		if operand == nil {
			return nil, errMissingOperand(op)
		}
		return build(pe, op, operand)
	}
	return func(t *matchers.Token, _ PrecedenceType) PrefixParsletParse {
		if !symbolMatches(t, tokenType, matches) {
			return nil
		}
		return parse
	}
}
