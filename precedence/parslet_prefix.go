package precedence

import (
	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

// LeafParsletBuilder matches a single token of tokenType, such as an integer.
func LeafParsletBuilder(tokenType matchers.TokenType, build PrefixNodeBuilder) PrefixParsletMatch {
	parse := func(pe *ParseEnvironment, _ PrecedenceType) (*phpfront.Node, error) {
		return build(pe, pe.Token(pe.Lexx.Token), nil)
	}
	return func(t *matchers.Token, _ PrecedenceType) PrefixParsletParse {
		if t.Type != tokenType {
			return nil
		}
		return parse
	}
}

// PrefixParsletBuilder treats every token of tokenType as a prefix operator.
func PrefixParsletBuilder(tokenType matchers.TokenType, precedenceLocal PrecedenceType, build PrefixNodeBuilder) PrefixParsletMatch {
	return PrefixSymbolParsletBuilder(nil, tokenType, precedenceLocal, build)
}
