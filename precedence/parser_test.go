package precedence_test

import (
	"testing"

	"github.com/JeffThomas/lexx"
	"github.com/JeffThomas/lexx/matchers"

	"phpfront/precedence"
	"phpfront/render"
)

func TestParser_GenericParslets(t *testing.T) {
	l := lexx.BuildLexxWithString("- 2 + 1 * 5", []matchers.LexxMatcherInitialize{
		matchers.StartIntegerMatcher,
		matchers.StartWhitespaceMatcher,
		matchers.ConfigOperatorMatcher([]string{"+", "-", "*"}),
	})
	pe := precedence.NewParseEnvironment(l)

	pe.AddPrefixParser(precedence.LeafParsletBuilder(matchers.INTEGER, precedence.BuildLeaf))
	pe.AddPrefixParser(precedence.PrefixParsletBuilder(matchers.OPERATOR, precedence.PRECEDENCE_PREFIX, precedence.BuildUnary))
	pe.AddInfixParser(precedence.InfixParsletBuilder(matchers.OPERATOR, precedence.PRECEDENCE_SUM, precedence.BuildBinary))

	tree, err := precedence.ParseElement(pe, precedence.PRECEDENCE_NONE)
	if err != nil {
		t.Fatal(err)
	}
	// every operator shares one precedence, so the tree folds to the left
	expected := "(op (op (op - 2) + 1) * 5)"
	if got := render.Compact(tree); got != expected {
		t.Errorf("Did not get expected results, expected %s got %s", expected, got)
	}
}

func TestParser_ParseBlockSequence(t *testing.T) {
	l := lexx.BuildLexxWithString("1 + 2 3 * 4", []matchers.LexxMatcherInitialize{
		matchers.StartIntegerMatcher,
		matchers.StartWhitespaceMatcher,
		matchers.ConfigOperatorMatcher([]string{"+", "*"}),
	})
	pe := precedence.NewParseEnvironment(l)
	pe.AddPrefixParser(precedence.LeafParsletBuilder(matchers.INTEGER, precedence.BuildLeaf))
	pe.AddInfixParser(precedence.InfixSymbolParsletBuilder([]string{"+"}, matchers.OPERATOR, precedence.PRECEDENCE_SUM, false, precedence.BuildBinary))
	pe.AddInfixParser(precedence.InfixSymbolParsletBuilder([]string{"*"}, matchers.OPERATOR, precedence.PRECEDENCE_PRODUCT, false, precedence.BuildBinary))

	elements, err := precedence.ParseBlock(pe, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(elements))
	}
	if got := render.Compact(elements[0]); got != "(op 1 + 2)" {
		t.Errorf("Did not get expected first element, got %s", got)
	}
	if got := render.Compact(elements[1]); got != "(op 3 * 4)" {
		t.Errorf("Did not get expected second element, got %s", got)
	}
}

func TestParser_TokenPositions(t *testing.T) {
	pe := precedence.NewArithmeticEnvironment("1 +\n 22")
	pe.Script = "calc"
	elements, err := precedence.ParseBlock(pe, nil)
	if err != nil {
		t.Fatal(err)
	}
	right := elements[0].Children[2].Token
	if right.Value != "22" || right.Pos.Filename != "calc" {
		t.Errorf("Did not get expected token, got %+v", right)
	}
}
