package phpfront

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// EOT is returned by lookahead past the end of the input.
const EOT rune = -1

// Reader is the character cursor the recognizers advance over.
type Reader struct {
	chars    []rune
	position int
	line     int
	column   int
	filename string
}

func NewReader(source string) *Reader {
	return &Reader{
		chars:  []rune(source),
		line:   1,
		column: 1,
	}
}

func NewReaderWithFilename(source string, filename string) *Reader {
	r := NewReader(source)
	r.filename = filename
	return r
}

func (r *Reader) Peek() rune {
	return r.PeekAt(0)
}

func (r *Reader) PeekAt(offset int) rune {
	i := r.position + offset
	if i < 0 || i >= len(r.chars) {
		return EOT
	}
	return r.chars[i]
}

// PeekN returns up to n characters from the current position, fewer at the
// end of the input.
func (r *Reader) PeekN(n int) string {
	end := r.position + n
	if end > len(r.chars) {
		end = len(r.chars)
	}
	return string(r.chars[r.position:end])
}

// PeekWhile returns the run of characters starting at offset for which
// accept holds.
func (r *Reader) PeekWhile(offset int, accept func(rune) bool) string {
	var sb strings.Builder
	for i := r.position + offset; i < len(r.chars) && accept(r.chars[i]); i++ {
		sb.WriteRune(r.chars[i])
	}
	return sb.String()
}

func (r *Reader) Forward() {
	if r.position >= len(r.chars) {
		return
	}
	if r.chars[r.position] == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}
	r.position++
}

func (r *Reader) ForwardN(n int) {
	for i := 0; i < n; i++ {
		r.Forward()
	}
}

func (r *Reader) IsEnd() bool {
	return r.position >= len(r.chars)
}

func (r *Reader) Offset() int {
	return r.position
}

func (r *Reader) Pos() lexer.Position {
	return lexer.Position{
		Filename: r.filename,
		Offset:   r.position,
		Line:     r.line,
		Column:   r.column,
	}
}
