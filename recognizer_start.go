package phpfront

const startMarker = "<?php"

// StartMarkerRecognizer switches the lexer into code on "<?php". Outside code
// every other character is inline text and is consumed as whitespace; inside
// code it declines so the code recognizers get their turn.
func StartMarkerRecognizer(r *Reader, state *LexState) (*Token, error) {
	if state.InCode {
		return nil, nil
	}
	if r.PeekN(len(startMarker)) == startMarker {
		state.InCode = true
		r.ForwardN(len(startMarker))
		return &Token{Type: START}, nil
	}
	r.Forward()
	return &Token{Type: WHITESPACE}, nil
}
