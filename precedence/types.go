package precedence

import (
	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

type PrefixNodeBuilder func(pe *ParseEnvironment, t *phpfront.Token, right *phpfront.Node) (*phpfront.Node, error)
type InfixNodeBuilder func(pe *ParseEnvironment, t *phpfront.Token, left *phpfront.Node, right *phpfront.Node) (*phpfront.Node, error)

type PrefixParsletParse func(*ParseEnvironment, PrecedenceType) (*phpfront.Node, error)
type PrefixParsletMatch func(*matchers.Token, PrecedenceType) PrefixParsletParse

type InfixParsletParse func(*ParseEnvironment, PrecedenceType, *phpfront.Node) (*phpfront.Node, error)
type InfixParsletMatch func(*matchers.Token, PrecedenceType) InfixParsletParse
