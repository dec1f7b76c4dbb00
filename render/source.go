package render

import (
	"strings"

	"phpfront"
)

// Source prints a tree back as program text. Parsing the output again
// yields a tree with the same shape.
func Source(n *phpfront.Node) string {
	var sb strings.Builder
	sb.WriteString("<?php\n")
	writeBlock(&sb, n, 0)
	return sb.String()
}

func writeBlock(sb *strings.Builder, block *phpfront.Node, depth int) {
	for _, stmt := range block.Children {
		sb.WriteString(strings.Repeat("    ", depth))
		writeStmt(sb, stmt, depth)
		sb.WriteString("\n")
	}
}

func writeStmt(sb *strings.Builder, stmt *phpfront.Node, depth int) {
	if len(stmt.Children) == 0 {
		return
	}
	child := stmt.Children[0]
	if child.Kind == phpfront.NODE_FN {
		writeFn(sb, child, depth)
		return
	}
	sb.WriteString(expression(child))
	sb.WriteString(";")
}

func writeFn(sb *strings.Builder, fn *phpfront.Node, depth int) {
	keyword, name, params, body := fn.Children[0], fn.Children[1], fn.Children[2], fn.Children[3]

	sb.WriteString(keyword.Token.Text())
	sb.WriteString(" ")
	sb.WriteString(name.Token.Text())
	sb.WriteString("(")
	for i, p := range params.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Token.Text())
	}
	sb.WriteString(") {\n")
	writeBlock(sb, body, depth+1)
	sb.WriteString(strings.Repeat("    ", depth))
	sb.WriteString("}")
}

// expression prints the children of an exp node in the order they were
// pushed. The builder drains its stack last-pushed-first, and an
// assignment, which always runs to the end of the expression, sits in
// front of the drained entries.
func expression(exp *phpfront.Node) string {
	parts := make([]string, 0, len(exp.Children))
	for i := len(exp.Children) - 1; i >= 0; i-- {
		parts = append(parts, operand(exp.Children[i]))
	}
	return strings.Join(parts, " ")
}

func operand(n *phpfront.Node) string {
	if n.IsLeaf() {
		if n.Token.Type == phpfront.STRING {
			return quote(n.Token.Value)
		}
		return n.Token.Text()
	}

	switch n.Kind {
	case phpfront.NODE_EXP:
		return "(" + expression(n) + ")"
	case phpfront.NODE_OP:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = operand(c)
		}
		return strings.Join(parts, " ")
	case phpfront.NODE_ASSIGNMENT:
		return operand(n.Children[0]) + " = " + expression(n.Children[1])
	case phpfront.NODE_FN_CALL:
		args := n.Children[1].Children
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = expression(a)
		}
		return n.Children[0].Token.Text() + "(" + strings.Join(parts, ", ") + ")"
	}
	return ""
}

func quote(s string) string {
	if strings.ContainsRune(s, '\'') {
		return "\"" + s + "\""
	}
	return "'" + s + "'"
}
