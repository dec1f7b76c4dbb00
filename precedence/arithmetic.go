package precedence

import (
	"errors"
	"strconv"

	"github.com/JeffThomas/lexx"
	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

// ArithmeticOperators are the operators understood by the arithmetic
// environment, parentheses included.
var ArithmeticOperators = []string{"(", ")", "+", "-", "*", "/", "%", "^"}

func errMissingOperand(t *phpfront.Token) error {
	return errors.New("missing operand after '" + t.Value + "' at " + strconv.Itoa(t.Pos.Line) + ", " + strconv.Itoa(t.Pos.Column))
}

func BuildLeaf(pe *ParseEnvironment, t *phpfront.Token, right *phpfront.Node) (*phpfront.Node, error) {
	return phpfront.NewLeaf(*t), nil
}

// BuildUnary builds a two child op node: [operator, operand].
func BuildUnary(pe *ParseEnvironment, t *phpfront.Token, right *phpfront.Node) (*phpfront.Node, error) {
	return phpfront.NewNode(phpfront.NODE_OP, phpfront.NewLeaf(*t), right), nil
}

// BuildBinary builds the same [left, operator, right] op node the statement
// parser produces.
func BuildBinary(pe *ParseEnvironment, t *phpfront.Token, left *phpfront.Node, right *phpfront.Node) (*phpfront.Node, error) {
	return phpfront.NewNode(phpfront.NODE_OP, left, phpfront.NewLeaf(*t), right), nil
}

// NewArithmeticEnvironment sets up integer arithmetic with the usual
// precedence: unary sign, then '^' (right associative), then '*' '/' '%',
// then '+' '-'.
func NewArithmeticEnvironment(text string) *ParseEnvironment {
	l := lexx.BuildLexxWithString(text, []matchers.LexxMatcherInitialize{
		matchers.StartIntegerMatcher,
		matchers.StartWhitespaceMatcher,
		matchers.ConfigOperatorMatcher(ArithmeticOperators),
	})
	pe := NewParseEnvironment(l)

	pe.AddPrefixParser(PrefixParsletSubBuilder(&matchers.Token{Type: matchers.OPERATOR, Value: "("}, &matchers.Token{Type: matchers.OPERATOR, Value: ")"}, nil))
	pe.AddPrefixParser(LeafParsletBuilder(matchers.INTEGER, BuildLeaf))
	pe.AddPrefixParser(PrefixSymbolParsletBuilder([]string{"-", "+"}, matchers.OPERATOR, PRECEDENCE_PREFIX, BuildUnary))

	pe.AddInfixParser(InfixSymbolParsletBuilder([]string{"+", "-"}, matchers.OPERATOR, PRECEDENCE_SUM, false, BuildBinary))
	pe.AddInfixParser(InfixSymbolParsletBuilder([]string{"*", "/", "%"}, matchers.OPERATOR, PRECEDENCE_PRODUCT, false, BuildBinary))
	pe.AddInfixParser(InfixSymbolParsletBuilder([]string{"^"}, matchers.OPERATOR, PRECEDENCE_EXPONENT, true, BuildBinary))
	return pe
}

// ParseArithmetic parses a whole arithmetic expression into an exp node
// holding a single op tree.
func ParseArithmetic(text string) (*phpfront.Node, error) {
	pe := NewArithmeticEnvironment(text)
	elements, err := ParseBlock(pe, nil)
	if err != nil {
		return nil, err
	}
	if len(elements) != 1 {
		return nil, errors.New("expected one expression, found " + strconv.Itoa(len(elements)))
	}
	return phpfront.NewNode(phpfront.NODE_EXP, elements...), nil
}
