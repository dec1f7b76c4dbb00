package precedence

import (
	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

// PrefixParsletSubBuilder parses the elements between openToken and
// closeToken as one exp node, the same node the statement parser makes for
// parentheses. A nil build returns that node as is.
func PrefixParsletSubBuilder(openToken *matchers.Token, closeToken *matchers.Token, build PrefixNodeBuilder) PrefixParsletMatch {
	parse := func(pe *ParseEnvironment, _ PrecedenceType) (*phpfront.Node, error) {
		start := pe.Token(pe.Lexx.Token)
		elements, err := ParseBlock(pe, closeToken)
		if err != nil {
			return nil, err
		}
		group := phpfront.NewNode(phpfront.NODE_EXP, elements...)
		if build == nil {
			return group, nil
		}
		return build(pe, start, group)
	}
	return func(t *matchers.Token, _ PrecedenceType) PrefixParsletParse {
		if openToken != nil && !openToken.Equals(t) {
			return nil
		}
		return parse
	}
}
