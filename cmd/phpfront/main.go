package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"phpfront"
	"phpfront/precedence"
	"phpfront/render"
)

const (
	appName     = "phpfront"
	historyFile = ".phpfront_history"
	promptMain  = "php> "
	promptCont  = "...> "
)

const sampleSource = `<?php

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

const usage = `usage: phpfront [flags] <command> [args]

commands:
  tokens [file]   print the token sequence
  ast [file]      print the syntax tree
  fmt [file]      print the program re-emitted from its syntax tree
  calc <expr>     parse integer arithmetic with and without precedence
  repl            read statements interactively

Without a file the built-in sample program is used; "-" reads stdin.

flags:
`

type options struct {
	code    bool
	color   bool
	history string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	recognizers := fs.String("recognizers", "default", `recognizer set: "default" expects <?php, "code" treats input as code`)
	color := fs.Bool("color", false, "style output with terminal colors")
	history := fs.String("history", "", "REPL history file (default ~/"+historyFile+")")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	opts := options{color: *color, history: *history}
	switch *recognizers {
	case "default":
	case "code":
		opts.code = true
	default:
		log.Printf("unknown recognizer set %q", *recognizers)
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "tokens", "ast", "fmt":
		return cmdSource(cmd, rest, opts)
	case "calc":
		return cmdCalc(rest, opts)
	case "repl":
		return cmdRepl(opts)
	}
	log.Printf("unknown command %q", cmd)
	fs.Usage()
	return 2
}

func (o options) theme() *render.Theme {
	if o.color {
		return render.ColorTheme()
	}
	return nil
}

func (o options) tokenize(src string, filename string) ([]phpfront.Token, error) {
	tz := phpfront.NewTokenizerWithReader(phpfront.NewReaderWithFilename(src, filename))
	if o.code {
		tz.AddRecognizers(phpfront.CodeRecognizers()...)
	} else {
		tz.AddRecognizers(phpfront.DefaultRecognizers()...)
	}
	return tz.Run()
}

func readSource(args []string) (string, string, error) {
	if len(args) == 0 {
		return sampleSource, "", nil
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), "<stdin>", err
	}
	data, err := os.ReadFile(args[0])
	return string(data), args[0], err
}

func cmdSource(cmd string, args []string, opts options) int {
	src, filename, err := readSource(args)
	if err != nil {
		log.Printf("read error: %v", err)
		return 1
	}
	th := opts.theme()

	tokens, err := opts.tokenize(src, filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, th.Err("lex error: "+err.Error()))
		return 1
	}
	if cmd == "tokens" {
		fmt.Print(render.Tokens(tokens, th))
		return 0
	}

	tree, err := phpfront.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, th.Err("parse error: "+err.Error()))
		return 1
	}
	if cmd == "fmt" {
		fmt.Print(render.Source(tree))
		return 0
	}
	fmt.Print(render.Tree(tree, th))
	return 0
}

func cmdCalc(args []string, opts options) int {
	if len(args) == 0 {
		log.Printf("calc needs an expression")
		return 2
	}
	text := strings.Join(args, " ")
	th := opts.theme()

	prec, err := precedence.ParseArithmetic(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, th.Err("parse error: "+err.Error()))
		return 1
	}
	fmt.Println("precedence:    " + render.Compact(prec) + " = " + evaluated(prec))

	tokens, err := phpfront.TokenizeCode(text + ";")
	if err != nil {
		fmt.Fprintln(os.Stderr, th.Err("lex error: "+err.Error()))
		return 1
	}
	tree, err := phpfront.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, th.Err("parse error: "+err.Error()))
		return 1
	}
	exp := tree.Children[0].Children[0]
	fmt.Println("left to right: " + render.Compact(exp) + " = " + evaluated(exp))
	return 0
}

func evaluated(n *phpfront.Node) string {
	v, err := precedence.Evaluate(n)
	if err != nil {
		return "error: " + err.Error()
	}
	return strconv.Itoa(v)
}

func cmdRepl(opts options) int {
	fmt.Println(appName + " REPL. Enter statements; Ctrl+D exits, :tokens toggles the token dump.")
	th := opts.theme()

	histPath := opts.history
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	showTokens := false
	for {
		code, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(code)
		switch trimmed {
		case "":
			continue
		case ":quit":
			return 0
		case ":tokens":
			showTokens = !showTokens
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		tokens, err := phpfront.TokenizeCode(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, th.Err(err.Error()))
			continue
		}
		if showTokens {
			fmt.Print(render.Tokens(tokens, th))
		}
		tree, err := phpfront.Parse(tokens)
		if err != nil {
			fmt.Fprintln(os.Stderr, th.Err(err.Error()))
			continue
		}
		fmt.Print(render.Tree(tree, th))
	}
}

// readStatement keeps prompting while the input parses up to an unexpected
// end of input, so a function body can span several lines.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if !incomplete(src) {
			return src, true
		}
	}
}

func incomplete(src string) bool {
	tokens, err := phpfront.TokenizeCode(src)
	if err != nil {
		return errors.Is(err, phpfront.ErrUnterminated)
	}
	_, err = phpfront.Parse(tokens)
	return errors.Is(err, phpfront.ErrUnterminated)
}
