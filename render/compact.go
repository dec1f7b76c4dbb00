package render

import (
	"strconv"
	"strings"

	"phpfront"
)

// Compact renders a tree as a single-line S-expression, for example
// "(exp (op (op 1 + 2) - 3))". Positions are not included, so two trees
// with the same shape render the same.
func Compact(n *phpfront.Node) string {
	var sb strings.Builder
	writeCompact(&sb, n)
	return sb.String()
}

func writeCompact(sb *strings.Builder, n *phpfront.Node) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	if n.IsLeaf() {
		sb.WriteString(leafText(n.Token))
		return
	}
	sb.WriteString("(")
	sb.WriteString(n.Kind)
	for _, c := range n.Children {
		sb.WriteString(" ")
		writeCompact(sb, c)
	}
	sb.WriteString(")")
}

func leafText(t *phpfront.Token) string {
	if t.Type == phpfront.STRING {
		return strconv.Quote(t.Value)
	}
	return t.Text()
}
