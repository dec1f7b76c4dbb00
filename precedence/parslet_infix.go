package precedence

import (
	"github.com/JeffThomas/lexx/matchers"
)

// InfixParsletBuilder treats every token of tokenType as a left associative
// binary operator.
func InfixParsletBuilder(tokenType matchers.TokenType, precedenceLocal PrecedenceType, build InfixNodeBuilder) InfixParsletMatch {
	return InfixSymbolParsletBuilder(nil, tokenType, precedenceLocal, false, build)
}
