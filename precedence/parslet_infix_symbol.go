package precedence

import (
	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

// InfixSymbolParsletBuilder matches the listed binary operators while the
// element being parsed sits below precedenceLocal. A right associative
// operator parses its right side one level lower so the same operator can
// bind there again.
func InfixSymbolParsletBuilder(matches []string, tokenType matchers.TokenType, precedenceLocal PrecedenceType, rightAssociative bool, build InfixNodeBuilder) InfixParsletMatch {
	rightPrecedence := precedenceLocal
	if rightAssociative {
		rightPrecedence--
	}
	parse := func(pe *ParseEnvironment, _ PrecedenceType, left *phpfront.Node) (*phpfront.Node, error) {
		op := pe.Token(pe.Lexx.Token)
		right, err := ParseElement(pe, rightPrecedence)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, errMissingOperand(op)
		}
		return build(pe, op, left, right)
	}
	return func(t *matchers.Token, precedence PrecedenceType) InfixParsletParse {
		if precedence >= precedenceLocal || !symbolMatches(t, tokenType, matches) {
			return nil
		}
		return parse
	}
}
