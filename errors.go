package phpfront

import (
	"errors"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrNoRecognizer    = errors.New("no recognizer matched")
	ErrNoProgress      = errors.New("recognizer matched without consuming input")
	ErrUnterminated    = errors.New("unterminated structure")
	ErrUnexpectedToken = errors.New("unexpected token")
)

func positionString(p lexer.Position) string {
	s := strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	if p.Filename != "" {
		return p.Filename + ":" + s
	}
	return s
}

type LexError struct {
	Pos     lexer.Position
	Message string
	Err     error
}

func (e *LexError) Error() string {
	return positionString(e.Pos) + ": " + e.Message
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// ParseError reports the token a grammar rule could not accept.
type ParseError struct {
	Token    Token
	Rule     string
	Expected string
}

func (e *ParseError) Error() string {
	msg := positionString(e.Token.Pos) + ": unexpected " + e.Token.String() + " in " + e.Rule
	if e.Token.Type == EOF {
		msg = positionString(e.Token.Pos) + ": unexpected end of input in " + e.Rule
	}
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	if e.Token.Type == EOF {
		return ErrUnterminated
	}
	return ErrUnexpectedToken
}
