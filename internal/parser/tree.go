package parser

import (
	"strings"

	"github.com/adalang/adafront/pkg/token"
)

// ParseTreeNode is the optional concrete parse tree (spec §3). A node
// exclusively owns its children; there is no sharing and no cycles. Token
// is present only on leaves derived from a matched terminal. Epsilon
// productions, when the tree is being built, appear as a single child
// named "ε".
type ParseTreeNode struct {
	Name     string
	Token    *token.Token
	Children []*ParseTreeNode
}

func newNode(name string) *ParseTreeNode {
	return &ParseTreeNode{Name: name}
}

func (n *ParseTreeNode) addChild(c *ParseTreeNode) {
	n.Children = append(n.Children, c)
}

func leafNode(name string, tok token.Token) *ParseTreeNode {
	t := tok
	return &ParseTreeNode{Name: name, Token: &t}
}

func epsilonNode() *ParseTreeNode {
	return newNode("ε")
}

// String renders a single node the way the reference grammar does: the
// node name, plus ": <lexeme>" when it is a leaf.
func (n *ParseTreeNode) String() string {
	if n.Token != nil {
		return n.Name + ": " + n.Token.Lexeme
	}
	return n.Name
}

// RenderTree renders the tree depth-first with last-child-aware connectors
// (spec §4.5): "├──"/"└──" branches, "│   " vs four-space continuation.
func RenderTree(root *ParseTreeNode) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(root.String())
	sb.WriteString("\n")
	renderChildren(&sb, root.Children, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, children []*ParseTreeNode, prefix string) {
	for i, c := range children {
		isLast := i == len(children)-1
		connector := "├── "
		nextPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			nextPrefix = prefix + "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(c.String())
		sb.WriteString("\n")
		renderChildren(sb, c.Children, nextPrefix)
	}
}
