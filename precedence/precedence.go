package precedence

// PrecedenceType orders binding strength. An infix parslet only binds when
// its level is above the level of the element being parsed.
type PrecedenceType int

const (
	PRECEDENCE_NONE     PrecedenceType = iota
	PRECEDENCE_SUM      PrecedenceType = iota // + -
	PRECEDENCE_PRODUCT  PrecedenceType = iota // * / %
	PRECEDENCE_EXPONENT PrecedenceType = iota // ^
	PRECEDENCE_PREFIX   PrecedenceType = iota // unary - +
)
