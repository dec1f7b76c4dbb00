package render_test

import (
	"strings"
	"testing"

	"phpfront"
	"phpfront/render"
)

const sample = `<?php

function say($text) {
    echo('Hello World');
    $foo = 1 + 2 - 3;
}

function boo() {
    print('Something');
    $foo = 'never';
    print($foo, $foo);
}

$foo = 'Hello world';
say($foo);
`

func parse(t *testing.T, source string) *phpfront.Node {
	t.Helper()
	tree, err := phpfront.ParseSource(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return tree
}

func TestSource_RoundTrip(t *testing.T) {
	sources := []string{
		sample,
		"<?php 1 2;",
		"<?php 1 $a = 2;",
		"<?php $a = $b = 1 + 2 * 3;",
		"<?php (1 + 2) * (3 - -4);",
		"<?php f(g(1) + 2, 'it' . \"'s\", (($x)));",
		"<?php ;;",
		"<?php 1 + 2 = 3;",
		"<?php $a .= 1 -3;",
		"<?php function outer($a, $b) { function inner() { } inner($a); }",
	}
	for _, source := range sources {
		tree := parse(t, source)
		printed := render.Source(tree)
		again := parse(t, printed)
		if render.Compact(tree) != render.Compact(again) {
			t.Errorf("Round trip changed the tree for %q\nprinted %s\nbefore  %s\nafter   %s", source, printed, render.Compact(tree), render.Compact(again))
		}
	}
}

func TestSource_Layout(t *testing.T) {
	got := render.Source(parse(t, "<?php function f($a, $b) { echo($a); } f(1, 'x');"))
	expected := "<?php\nfunction f($a, $b) {\n    echo($a);\n}\nf(1, 'x');\n"
	if got != expected {
		t.Errorf("Did not get expected source\nexpected %q\ngot      %q", expected, got)
	}
}

func TestTree_Plain(t *testing.T) {
	tokens, err := phpfront.TokenizeCode("$a = 1;")
	if err != nil {
		t.Fatal(err)
	}
	tree, err := phpfront.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"code block",
		"  stmt",
		"    exp",
		"      assignment",
		"        $a VARIABLE 1:1",
		"        exp",
		"          1 NUMBER 1:6",
		"",
	}, "\n")
	if got := render.Tree(tree, nil); got != expected {
		t.Errorf("Did not get expected tree\nexpected %q\ngot      %q", expected, got)
	}
}

func TestTree_Themed(t *testing.T) {
	got := render.Tree(parse(t, "<?php $a;"), render.ColorTheme())
	for _, part := range []string{"code block", "stmt", "$a", "VARIABLE"} {
		if !strings.Contains(got, part) {
			t.Errorf("Expected %q in themed output %q", part, got)
		}
	}
}

func TestTokens(t *testing.T) {
	tokens, err := phpfront.TokenizeCode("$a = 'x';")
	if err != nil {
		t.Fatal(err)
	}
	expected := "1:1 VARIABLE $a\n1:4 ASSIGNMENT\n1:6 STRING \"x\"\n1:9 SEMICOLON\n1:10 EOF\n"
	if got := render.Tokens(tokens, nil); got != expected {
		t.Errorf("Did not get expected tokens\nexpected %q\ngot      %q", expected, got)
	}
}

func TestCompact_Nil(t *testing.T) {
	if render.Compact(nil) != "nil" {
		t.Errorf("Expected nil")
	}
}
