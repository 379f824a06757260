package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// wrapNode wraps a tree-sitter node in our Node type.
func wrapNode(tsNode *sitter.Node, content []byte) *Node {
	if tsNode == nil {
		return nil
	}

	return &Node{
		tsNode:  tsNode,
		content: content,
	}
}

// Type returns the grammar node kind (e.g. "mod_item", "use_declaration").
func (n *Node) Type() string {
	if n == nil || n.tsNode == nil {
		return ""
	}
	return n.tsNode.Type()
}

// Text returns the exact source text spanned by this node.
func (n *Node) Text() string {
	if n == nil || n.tsNode == nil {
		return ""
	}
	return n.tsNode.Content(n.content)
}

// StartByte returns the byte offset of the node's first character.
func (n *Node) StartByte() uint32 {
	if n == nil || n.tsNode == nil {
		return 0
	}
	return n.tsNode.StartByte()
}

// EndByte returns the byte offset just past the node's last character.
func (n *Node) EndByte() uint32 {
	if n == nil || n.tsNode == nil {
		return 0
	}
	return n.tsNode.EndByte()
}

// Children returns every child node, named or anonymous (punctuation,
// keywords).
func (n *Node) Children() []*Node {
	if n == nil || n.tsNode == nil {
		return nil
	}

	count := int(n.tsNode.ChildCount())
	children := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.tsNode.Child(i); child != nil {
			children = append(children, wrapNode(child, n.content))
		}
	}
	return children
}

// NamedChildren returns only named children, skipping punctuation and
// keyword tokens.
func (n *Node) NamedChildren() []*Node {
	if n == nil || n.tsNode == nil {
		return nil
	}

	count := int(n.tsNode.NamedChildCount())
	children := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.tsNode.NamedChild(i); child != nil {
			children = append(children, wrapNode(child, n.content))
		}
	}
	return children
}

// ChildByFieldName returns the child bound to the given grammar field,
// or nil if the field is absent on this node.
func (n *Node) ChildByFieldName(field string) *Node {
	if n == nil || n.tsNode == nil {
		return nil
	}
	return wrapNode(n.tsNode.ChildByFieldName(field), n.content)
}

// StartPoint returns the node's starting row/column, for diagnostics.
func (n *Node) StartPoint() (row, col uint32) {
	if n == nil || n.tsNode == nil {
		return 0, 0
	}
	point := n.tsNode.StartPoint()
	return point.Row, point.Column
}

// Walk traverses the tree depth-first, calling visitor for each node.
// Descent into a node's children is skipped once visitor returns false
// for it.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}
	if !visitor(n) {
		return
	}
	for _, child := range n.Children() {
		child.Walk(visitor)
	}
}
