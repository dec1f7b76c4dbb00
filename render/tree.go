package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"phpfront"
)

// Theme styles the parts of a tree or token dump. A nil *Theme renders
// plain text.
type Theme struct {
	Kind  lipgloss.Style
	Leaf  lipgloss.Style
	Type  lipgloss.Style
	Pos   lipgloss.Style
	Error lipgloss.Style
}

func ColorTheme() *Theme {
	return &Theme{
		Kind:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Leaf:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Type:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Pos:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (th *Theme) paint(style func(*Theme) lipgloss.Style, s string) string {
	if th == nil {
		return s
	}
	return style(th).Render(s)
}

func kindStyle(th *Theme) lipgloss.Style { return th.Kind }
func leafStyle(th *Theme) lipgloss.Style { return th.Leaf }
func typeStyle(th *Theme) lipgloss.Style { return th.Type }
func posStyle(th *Theme) lipgloss.Style { return th.Pos }
func errorStyle(th *Theme) lipgloss.Style { return th.Error }

// Err styles an error message for terminal output.
func (th *Theme) Err(s string) string {
	return th.paint(errorStyle, s)
}

// Tree renders one node per line, children indented two spaces under their
// parent. Leaves show the token text, its type and its position.
func Tree(n *phpfront.Node, th *Theme) string {
	var sb strings.Builder
	writeTree(&sb, n, 0, th)
	return sb.String()
}

func writeTree(sb *strings.Builder, n *phpfront.Node, depth int, th *Theme) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n.IsLeaf() {
		sb.WriteString(th.paint(leafStyle, leafText(n.Token)))
		sb.WriteString(" ")
		sb.WriteString(th.paint(typeStyle, n.Token.Type.String()))
		sb.WriteString(" ")
		sb.WriteString(th.paint(posStyle, position(n.Token)))
		sb.WriteString("\n")
		return
	}
	sb.WriteString(th.paint(kindStyle, n.Kind))
	sb.WriteString("\n")
	for _, c := range n.Children {
		writeTree(sb, c, depth+1, th)
	}
}

// Tokens renders one token per line prefixed by its position.
func Tokens(tokens []phpfront.Token, th *Theme) string {
	var sb strings.Builder
	for i := range tokens {
		t := &tokens[i]
		sb.WriteString(th.paint(posStyle, position(t)))
		sb.WriteString(" ")
		sb.WriteString(th.paint(typeStyle, t.Type.String()))
		if v := tokenValue(t); v != "" {
			sb.WriteString(" ")
			sb.WriteString(th.paint(leafStyle, v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func tokenValue(t *phpfront.Token) string {
	switch t.Type {
	case phpfront.KEYWORD, phpfront.VARIABLE, phpfront.FUNCTION_NAME, phpfront.OPERATOR, phpfront.NUMBER:
		return t.Text()
	case phpfront.STRING:
		return strconv.Quote(t.Value)
	}
	return ""
}

func position(t *phpfront.Token) string {
	return strconv.Itoa(t.Pos.Line) + ":" + strconv.Itoa(t.Pos.Column)
}
