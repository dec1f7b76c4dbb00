package phpfront

// BuildStmtExp parses tokens up to ';', ',' or ')' and leaves the terminator
// for the caller. Operands and operators go onto a stack and every time the
// stack holds three entries they are folded into one op node, so grouping
// is strictly left to right with no precedence. An assignment takes the
// last stack entry as its target and the whole rest of the expression as
// its value.
func (b *Builder) BuildStmtExp() (*Node, error) {
	n := NewNode(NODE_EXP)
	stack := make([]*Node, 0, 3)

	push := func(node *Node) {
		stack = append(stack, node)
		if len(stack) == 3 {
			stack = []*Node{NewNode(NODE_OP, stack[0], stack[1], stack[2])}
		}
	}

loop:
	for {
		switch b.tokens.Peek().Type {
		case SEMICOLON, COMMA, PAREN_CLOSE:
			break loop

		case ASSIGNMENT:
			if len(stack) == 0 {
				return nil, b.unexpected("expression", "assignment target before '='")
			}
			b.tokens.Next()
			left := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			right, err := b.BuildStmtExp()
			if err != nil {
				return nil, err
			}
			n.Add(NewNode(NODE_ASSIGNMENT, left, right))

		case FUNCTION_NAME:
			call, err := b.BuildFnCall()
			if err != nil {
				return nil, err
			}
			push(call)

		case VARIABLE, STRING, NUMBER, OPERATOR:
			push(NewLeaf(b.tokens.Next()))

		case PAREN_OPEN:
			b.tokens.Next()
			sub, err := b.BuildStmtExp()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(PAREN_CLOSE, "parenthesized expression", "')'"); err != nil {
				return nil, err
			}
			push(sub)

		default:
			return nil, b.unexpected("expression", "operand, operator or ';'")
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		n.Add(stack[i])
	}
	return n, nil
}

// BuildFnCall parses name(arg, ...) into [name, arg list] where each argument
// is a full expression.
func (b *Builder) BuildFnCall() (*Node, error) {
	n := NewNode(NODE_FN_CALL)
	n.Add(NewLeaf(b.tokens.Next()))

	if _, err := b.expect(PAREN_OPEN, "function call", "'('"); err != nil {
		return nil, err
	}

	args := NewNode(NODE_ARG_LIST)
	for {
		switch b.tokens.Peek().Type {
		case COMMA:
			b.tokens.Next()
		case PAREN_CLOSE:
			b.tokens.Next()
			n.Add(args)
			return n, nil
		case SEMICOLON, EOF:
			return nil, b.unexpected("argument list", "')'")
		default:
			arg, err := b.BuildStmtExp()
			if err != nil {
				return nil, err
			}
			args.Add(arg)
		}
	}
}
