package precedence

import (
	"errors"
	"strconv"

	"github.com/JeffThomas/lexx/matchers"

	"phpfront"
)

func matchPrefixParser(pe *ParseEnvironment, t *matchers.Token, precedence PrecedenceType) PrefixParsletParse {
	for _, match := range pe.PrefixParsers {
		parse := match(t, precedence)
		if parse != nil {
			return parse
		}
	}
	return nil
}

func matchInfixParser(pe *ParseEnvironment, t *matchers.Token, precedence PrecedenceType) InfixParsletParse {
	for _, match := range pe.InfixParsers {
		parse := match(t, precedence)
		if parse != nil {
			return parse
		}
	}
	return nil
}

func isEOF(t *matchers.Token) bool {
	return t != nil && t.Type == matchers.SYSTEM && t.Value == "EOF"
}

func (pe *ParseEnvironment) nextToken() (*matchers.Token, error) {
	if pe.EOF {
		return nil, nil
	}
	t, err := pe.Lexx.GetNextToken()
	if t != nil && t.Type == matchers.WHITESPACE {
		t, err = pe.Lexx.GetNextToken()
	}
	if err != nil || isEOF(t) {
		pe.EOF = true
	}
	return t, err
}

// ParseElement parses one element whose infix operators all bind tighter
// than precedence. It returns nil when the next token cannot start an
// element; that token is pushed back for the caller.
func ParseElement(pe *ParseEnvironment, precedence PrecedenceType) (*phpfront.Node, error) {
	currentToken, err := pe.nextToken()
	if err != nil || pe.EOF {
		return nil, err
	}

	if currentToken == nil {
		return nil, errors.New("could not match token '" + string(pe.Lexx.State.CurrentText) + "' at " + strconv.Itoa(pe.Lexx.State.Line) + ", " + strconv.Itoa(pe.Lexx.State.Column))
	}

	prefixP := matchPrefixParser(pe, currentToken, precedence)
	if prefixP == nil {
		pe.Lexx.PushToken()
		return nil, nil
	}

	pe.Line = pe.Lexx.State.Line
	pe.Column = pe.Lexx.State.Column
	left, err := prefixP(pe, precedence)
	if err != nil {
		return nil, err
	}

	for {
		currentToken, err = pe.nextToken()
		if err != nil || pe.EOF {
			return left, nil
		}
		if currentToken == nil {
			return nil, errors.New("could not match token '" + string(pe.Lexx.State.CurrentText) + "' at " + strconv.Itoa(pe.Lexx.State.LineNext) + ", " + strconv.Itoa(pe.Lexx.State.ColumnNext))
		}

		infixP := matchInfixParser(pe, currentToken, precedence)
		if infixP == nil {
			pe.Lexx.PushToken()
			return left, nil
		}
		pe.Line = pe.Lexx.State.Line
		pe.Column = pe.Lexx.State.Column
		element, err := infixP(pe, precedence, left)
		if err != nil {
			return nil, err
		}
		if element == nil {
			return left, nil
		}
		left = element
	}
}

// ParseBlock parses elements until blockEndToken, or until EOF when
// blockEndToken is nil, and returns them in order.
func ParseBlock(pe *ParseEnvironment, blockEndToken *matchers.Token) ([]*phpfront.Node, error) {
	elements := make([]*phpfront.Node, 0)

	startLine := pe.Line
	startColumn := pe.Column

	for {
		t, err := pe.nextToken()
		if err != nil {
			return nil, err
		}
		if pe.EOF {
			if blockEndToken != nil {
				return nil, errors.New("unexpected EOF, did not find end of Block started at " + strconv.Itoa(startLine) + ", " + strconv.Itoa(startColumn))
			}
			return elements, nil
		}
		if t == nil {
			return nil, errors.New("could not match token " + pe.Script + " '" + string(pe.Lexx.State.CurrentText) + "' at " + strconv.Itoa(pe.Line) + ", " + strconv.Itoa(pe.Column))
		}
		if blockEndToken != nil && blockEndToken.Equals(t) {
			return elements, nil
		}

		pe.Lexx.PushToken()
		right, err := ParseElement(pe, PRECEDENCE_NONE)
		if err != nil {
			return nil, err
		}
		if right == nil {
			if pe.EOF {
				continue
			}
			return nil, errors.New("unexpected token '" + t.Value + "' at " + strconv.Itoa(t.Line) + ", " + strconv.Itoa(t.Column))
		}
		elements = append(elements, right)
	}
}
