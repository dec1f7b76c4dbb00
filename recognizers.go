package phpfront

// CodeRecognizers is the recognizer order for text that is already inside
// code. Earlier recognizers win.
func CodeRecognizers() []Recognizer {
	return []Recognizer{
		ConfigKeywordRecognizer(KeywordNames()),
		StringRecognizer,
		NumberRecognizer,
		VariableRecognizer,
		AssignmentRecognizer,
		ConfigOperatorRecognizer(OperatorChars),
		ConfigSymbolRecognizer(';', SEMICOLON),
		ConfigSymbolRecognizer('(', PAREN_OPEN),
		ConfigSymbolRecognizer(')', PAREN_CLOSE),
		ConfigSymbolRecognizer('{', BLOCK_OPEN),
		ConfigSymbolRecognizer('}', BLOCK_CLOSE),
		ConfigSymbolRecognizer(',', COMMA),
		IdentifierRecognizer,
		DiscardRecognizer,
	}
}

// DefaultRecognizers handles a whole file: text before "<?php" is skipped.
func DefaultRecognizers() []Recognizer {
	return append([]Recognizer{StartMarkerRecognizer}, CodeRecognizers()...)
}

func Tokenize(source string) ([]Token, error) {
	tz := NewTokenizer(source)
	tz.AddRecognizers(DefaultRecognizers()...)
	return tz.Run()
}

// TokenizeCode tokenizes a fragment with no start marker.
func TokenizeCode(source string) ([]Token, error) {
	tz := NewTokenizer(source)
	tz.AddRecognizers(CodeRecognizers()...)
	return tz.Run()
}

func TokenizeFile(source string, filename string) ([]Token, error) {
	tz := NewTokenizerWithReader(NewReaderWithFilename(source, filename))
	tz.AddRecognizers(DefaultRecognizers()...)
	return tz.Run()
}
