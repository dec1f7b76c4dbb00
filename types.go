package phpfront

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

type TokenType int

const (
	START         TokenType = iota // <?php
	KEYWORD       TokenType = iota
	VARIABLE      TokenType = iota // $name, Value holds the name without '$'
	FUNCTION_NAME TokenType = iota
	OPERATOR      TokenType = iota
	ASSIGNMENT    TokenType = iota
	STRING        TokenType = iota // Value holds the unquoted text
	NUMBER        TokenType = iota
	SEMICOLON     TokenType = iota
	COMMA         TokenType = iota
	PAREN_OPEN    TokenType = iota
	PAREN_CLOSE   TokenType = iota
	BLOCK_OPEN    TokenType = iota
	BLOCK_CLOSE   TokenType = iota
	WHITESPACE    TokenType = iota // never stored
	EOF           TokenType = iota
)

var tokenTypeNames = [...]string{
	START:         "START",
	KEYWORD:       "KEYWORD",
	VARIABLE:      "VARIABLE",
	FUNCTION_NAME: "FUNCTION_NAME",
	OPERATOR:      "OPERATOR",
	ASSIGNMENT:    "ASSIGNMENT",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	SEMICOLON:     "SEMICOLON",
	COMMA:         "COMMA",
	PAREN_OPEN:    "PAREN_OPEN",
	PAREN_CLOSE:   "PAREN_CLOSE",
	BLOCK_OPEN:    "BLOCK_OPEN",
	BLOCK_CLOSE:   "BLOCK_CLOSE",
	WHITESPACE:    "WHITESPACE",
	EOF:           "EOF",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

type Keyword int

const (
	KEYWORD_NONE     Keyword = iota
	KEYWORD_FUNCTION Keyword = iota
)

var keywords = map[string]Keyword{
	"function": KEYWORD_FUNCTION,
}

// KeywordNames lists the reserved words in the order the keyword recognizer
// tries them.
func KeywordNames() []string {
	return []string{"function"}
}

func KeywordForName(name string) (Keyword, bool) {
	k, ok := keywords[name]
	return k, ok
}

type Token struct {
	Type    TokenType
	Value   string
	Keyword Keyword
	Pos     lexer.Position
}

// Equals compares kind and payload, ignoring position.
func (t *Token) Equals(o *Token) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Type == o.Type && t.Value == o.Value && t.Keyword == o.Keyword
}

// Text is the token as it would appear in source.
func (t *Token) Text() string {
	switch t.Type {
	case START:
		return "<?php"
	case VARIABLE:
		return "$" + t.Value
	case ASSIGNMENT:
		return "="
	case SEMICOLON:
		return ";"
	case COMMA:
		return ","
	case PAREN_OPEN:
		return "("
	case PAREN_CLOSE:
		return ")"
	case BLOCK_OPEN:
		return "{"
	case BLOCK_CLOSE:
		return "}"
	case EOF:
		return ""
	}
	return t.Value
}

func (t *Token) String() string {
	switch t.Type {
	case KEYWORD, VARIABLE, FUNCTION_NAME, OPERATOR, STRING, NUMBER:
		return t.Type.String() + "(" + strconv.Quote(t.Value) + ")"
	}
	return t.Type.String()
}

// LexState is the mutable context threaded through every recognizer call
// of a single tokenizer run.
type LexState struct {
	InCode bool
}

// Recognizer tries to claim characters at the reader's position. Returning a
// nil token declines the match and must leave the reader where it was.
type Recognizer func(r *Reader, state *LexState) (*Token, error)
