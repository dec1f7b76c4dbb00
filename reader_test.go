package phpfront_test

import (
	"testing"

	"phpfront"
)

func TestReader_Lookahead(t *testing.T) {
	r := phpfront.NewReader("ab")

	if r.Peek() != 'a' || r.PeekAt(1) != 'b' {
		t.Errorf("Did not get expected lookahead, got %q %q", r.Peek(), r.PeekAt(1))
	}
	if r.PeekAt(2) != phpfront.EOT || r.PeekAt(-1) != phpfront.EOT {
		t.Errorf("Expected EOT outside the input")
	}
	if r.PeekN(5) != "ab" {
		t.Errorf("Expected PeekN to stop at the end, got %q", r.PeekN(5))
	}

	r.ForwardN(5)
	if !r.IsEnd() || r.Offset() != 2 {
		t.Errorf("Expected reader at end, offset %d", r.Offset())
	}
	if r.Peek() != phpfront.EOT {
		t.Errorf("Expected EOT at end, got %q", r.Peek())
	}
}

func TestReader_PeekWhile(t *testing.T) {
	r := phpfront.NewReader("123abc")
	digits := r.PeekWhile(0, func(c rune) bool { return c >= '0' && c <= '9' })
	if digits != "123" {
		t.Errorf("Did not get expected run, expected 123 got %s", digits)
	}
	if r.Offset() != 0 {
		t.Errorf("PeekWhile must not move the reader")
	}
}

func TestReader_Position(t *testing.T) {
	r := phpfront.NewReaderWithFilename("a\nbc", "x.php")
	r.ForwardN(3)
	p := r.Pos()
	if p.Line != 2 || p.Column != 2 || p.Offset != 3 || p.Filename != "x.php" {
		t.Errorf("Did not get expected position, got %+v", p)
	}
}
