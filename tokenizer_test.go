package phpfront_test

import (
	"errors"
	"testing"

	"phpfront"
)

func tok(tokenType phpfront.TokenType, value string) phpfront.Token {
	return phpfront.Token{Type: tokenType, Value: value}
}

func kw(name string) phpfront.Token {
	k, _ := phpfront.KeywordForName(name)
	return phpfront.Token{Type: phpfront.KEYWORD, Value: name, Keyword: k}
}

func expectTokens(t *testing.T, source string, got []phpfront.Token, expected []phpfront.Token) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Did not get expected tokens for %q, expected %d got %d: %v", source, len(expected), len(got), got)
	}
	for i := range expected {
		if !got[i].Equals(&expected[i]) {
			t.Errorf("token %d of %q: expected %s got %s", i, source, expected[i].String(), got[i].String())
		}
	}
}

func TestTokenize_NothingRecognized(t *testing.T) {
	for _, source := range []string{"", "just some text", "  \n\t "} {
		tokens, err := phpfront.Tokenize(source)
		if err != nil {
			t.Fatal(err)
		}
		expectTokens(t, source, tokens, []phpfront.Token{tok(phpfront.EOF, "")})
	}

	tokens, err := phpfront.TokenizeCode(" \n\t\r ")
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "whitespace", tokens, []phpfront.Token{tok(phpfront.EOF, "")})
}

func TestTokenize_NoWhitespaceSingleEOF(t *testing.T) {
	tokens, err := phpfront.Tokenize("<?php\n  function f($a) {\n\t$a = 1 + 2;\n}\n f( 'x' ) ;  ")
	if err != nil {
		t.Fatal(err)
	}
	eofs := 0
	for _, tk := range tokens {
		if tk.Type == phpfront.WHITESPACE {
			t.Errorf("WHITESPACE token in output")
		}
		if tk.Type == phpfront.EOF {
			eofs++
		}
	}
	if eofs != 1 || tokens[len(tokens)-1].Type != phpfront.EOF {
		t.Errorf("Expected exactly one trailing EOF, got %d", eofs)
	}
}

func TestTokenize_StartMarker(t *testing.T) {
	source := "<html> <?php $a;"
	tokens, err := phpfront.Tokenize(source)
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, source, tokens, []phpfront.Token{
		tok(phpfront.START, ""),
		tok(phpfront.VARIABLE, "a"),
		tok(phpfront.SEMICOLON, ""),
		tok(phpfront.EOF, ""),
	})
}

func TestTokenize_RecognizerOrder(t *testing.T) {
	keywordFirst := phpfront.NewTokenizer("function")
	keywordFirst.AddRecognizer(phpfront.ConfigKeywordRecognizer(phpfront.KeywordNames()))
	keywordFirst.AddRecognizer(phpfront.IdentifierRecognizer)
	tokens, err := keywordFirst.Run()
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "keyword first", tokens, []phpfront.Token{kw("function"), tok(phpfront.EOF, "")})

	identifierFirst := phpfront.NewTokenizer("function")
	identifierFirst.AddRecognizer(phpfront.IdentifierRecognizer)
	identifierFirst.AddRecognizer(phpfront.ConfigKeywordRecognizer(phpfront.KeywordNames()))
	tokens, err = identifierFirst.Run()
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "identifier first", tokens, []phpfront.Token{tok(phpfront.FUNCTION_NAME, "function"), tok(phpfront.EOF, "")})
}

func TestTokenize_DeclinedRecognizerKeepsPosition(t *testing.T) {
	calls := 0
	decline := func(r *phpfront.Reader, state *phpfront.LexState) (*phpfront.Token, error) {
		calls++
		return nil, nil
	}
	tz := phpfront.NewTokenizer("$x")
	tz.AddRecognizers(decline, phpfront.VariableRecognizer)
	tokens, err := tz.Run()
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "$x", tokens, []phpfront.Token{tok(phpfront.VARIABLE, "x"), tok(phpfront.EOF, "")})
	if calls != 1 {
		t.Errorf("Expected the declining recognizer to be tried once, got %d", calls)
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		source   string
		expected []phpfront.Token
	}{
		{"-3", []phpfront.Token{tok(phpfront.NUMBER, "-3")}},
		{"1-3", []phpfront.Token{tok(phpfront.NUMBER, "1"), tok(phpfront.OPERATOR, "-"), tok(phpfront.NUMBER, "3")}},
		{"1 - 3", []phpfront.Token{tok(phpfront.NUMBER, "1"), tok(phpfront.OPERATOR, "-"), tok(phpfront.NUMBER, "3")}},
		{"$a-1", []phpfront.Token{tok(phpfront.VARIABLE, "a"), tok(phpfront.OPERATOR, "-"), tok(phpfront.NUMBER, "1")}},
		{"3.25 .5", []phpfront.Token{tok(phpfront.NUMBER, "3.25"), tok(phpfront.NUMBER, ".5")}},
		{"- x", []phpfront.Token{tok(phpfront.OPERATOR, "-"), tok(phpfront.FUNCTION_NAME, "x")}},
	}
	for _, test := range tests {
		tokens, err := phpfront.TokenizeCode(test.source)
		if err != nil {
			t.Fatal(err)
		}
		expectTokens(t, test.source, tokens, append(test.expected, tok(phpfront.EOF, "")))
	}

	tokens, err := phpfront.Tokenize("<?php -3")
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "<?php -3", tokens, []phpfront.Token{tok(phpfront.START, ""), tok(phpfront.NUMBER, "-3"), tok(phpfront.EOF, "")})
}

func TestTokenize_Strings(t *testing.T) {
	tokens, err := phpfront.TokenizeCode(`'Hello world' "it's"`)
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "strings", tokens, []phpfront.Token{
		tok(phpfront.STRING, "Hello world"),
		tok(phpfront.STRING, "it's"),
		tok(phpfront.EOF, ""),
	})

	_, err = phpfront.TokenizeCode("'never closed")
	if !errors.Is(err, phpfront.ErrUnterminated) {
		t.Errorf("Expected unterminated string error, got %v", err)
	}
	var lexErr *phpfront.LexError
	if !errors.As(err, &lexErr) || lexErr.Pos.Column != 1 {
		t.Errorf("Expected LexError at column 1, got %v", err)
	}
}

func TestTokenize_OperatorsAndNames(t *testing.T) {
	source := "function functional($a_1) { $a == 1; $b = !$c; $d .= 'x', f(); }"
	tokens, err := phpfront.TokenizeCode(source)
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, source, tokens, []phpfront.Token{
		kw("function"),
		tok(phpfront.FUNCTION_NAME, "functional"),
		tok(phpfront.PAREN_OPEN, ""),
		tok(phpfront.VARIABLE, "a_1"),
		tok(phpfront.PAREN_CLOSE, ""),
		tok(phpfront.BLOCK_OPEN, ""),
		tok(phpfront.VARIABLE, "a"),
		tok(phpfront.OPERATOR, "=="),
		tok(phpfront.NUMBER, "1"),
		tok(phpfront.SEMICOLON, ""),
		tok(phpfront.VARIABLE, "b"),
		tok(phpfront.ASSIGNMENT, ""),
		tok(phpfront.OPERATOR, "!"),
		tok(phpfront.VARIABLE, "c"),
		tok(phpfront.SEMICOLON, ""),
		tok(phpfront.VARIABLE, "d"),
		tok(phpfront.OPERATOR, ".="),
		tok(phpfront.STRING, "x"),
		tok(phpfront.COMMA, ""),
		tok(phpfront.FUNCTION_NAME, "f"),
		tok(phpfront.PAREN_OPEN, ""),
		tok(phpfront.PAREN_CLOSE, ""),
		tok(phpfront.SEMICOLON, ""),
		tok(phpfront.BLOCK_CLOSE, ""),
		tok(phpfront.EOF, ""),
	})
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := phpfront.TokenizeFile("<?php\n$a = 1;", "a.php")
	if err != nil {
		t.Fatal(err)
	}
	expected := [][2]int{{1, 1}, {2, 1}, {2, 4}, {2, 6}, {2, 7}, {2, 8}}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, e := range expected {
		p := tokens[i].Pos
		if p.Line != e[0] || p.Column != e[1] || p.Filename != "a.php" {
			t.Errorf("token %d %s: expected %d:%d got %d:%d", i, tokens[i].String(), e[0], e[1], p.Line, p.Column)
		}
	}
}

func TestTokenize_NoRecognizer(t *testing.T) {
	tz := phpfront.NewTokenizer("1a")
	tz.AddRecognizer(phpfront.NumberRecognizer)
	_, err := tz.Run()
	if !errors.Is(err, phpfront.ErrNoRecognizer) {
		t.Errorf("Expected ErrNoRecognizer, got %v", err)
	}
}

func TestTokenize_NoProgress(t *testing.T) {
	stuck := func(r *phpfront.Reader, state *phpfront.LexState) (*phpfront.Token, error) {
		return &phpfront.Token{Type: phpfront.SEMICOLON}, nil
	}
	tz := phpfront.NewTokenizer("x")
	tz.AddRecognizer(stuck)
	_, err := tz.Run()
	if !errors.Is(err, phpfront.ErrNoProgress) {
		t.Errorf("Expected ErrNoProgress, got %v", err)
	}
}

func TestTokenize_StateIsPerRun(t *testing.T) {
	first := phpfront.NewTokenizer("<?php $a")
	first.AddRecognizers(phpfront.DefaultRecognizers()...)
	second := phpfront.NewTokenizer("$a")
	second.AddRecognizers(phpfront.DefaultRecognizers()...)

	if _, err := first.Run(); err != nil {
		t.Fatal(err)
	}
	if !first.State.InCode {
		t.Errorf("Expected the first run to be in code")
	}
	tokens, err := second.Run()
	if err != nil {
		t.Fatal(err)
	}
	expectTokens(t, "$a outside code", tokens, []phpfront.Token{tok(phpfront.EOF, "")})
}
