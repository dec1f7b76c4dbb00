package phpfront

const (
	NODE_CODE_BLOCK = "code block"
	NODE_STMT       = "stmt"
	NODE_EXP        = "exp"
	NODE_ASSIGNMENT = "assignment"
	NODE_OP         = "op"
	NODE_FN_CALL    = "fn call"
	NODE_FN         = "fn"
	NODE_ARG_LIST   = "arg list"
	NODE_LEAF       = "leaf"
)

// Node is either a composite with children or a leaf carrying one token.
type Node struct {
	Kind     string
	Token    *Token
	Children []*Node
}

func NewNode(kind string, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

func NewLeaf(t Token) *Node {
	return &Node{Kind: NODE_LEAF, Token: &t}
}

func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
}

func (n *Node) IsLeaf() bool {
	return n.Token != nil
}
