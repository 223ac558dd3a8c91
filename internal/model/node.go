package model

// Node is a labeled tree node carrying a statement payload. A tree is
// built once per report from layout configuration and owned exclusively
// by that report.
type Node[T any] struct {
	Level    int
	Name     string
	Value    T
	Children []*Node[T]
}

// NewNode creates a node at the given depth.
func NewNode[T any](level int, name string) *Node[T] {
	return &Node[T]{Level: level, Name: name}
}

// Add appends a child node.
func (n *Node[T]) Add(child *Node[T]) {
	n.Children = append(n.Children, child)
}

// FindByName returns all descendants of root with the given name, in
// document order. The root itself is not considered.
func FindByName[T any](root *Node[T], name string) []*Node[T] {
	var found []*Node[T]
	for _, child := range root.Children {
		if child.Name == name {
			found = append(found, child)
		}
		found = append(found, FindByName(child, name)...)
	}
	return found
}

// Flatten returns the node followed by all descendants in pre-order.
func Flatten[T any](root *Node[T]) []*Node[T] {
	list := []*Node[T]{root}
	for _, child := range root.Children {
		list = append(list, Flatten(child)...)
	}
	return list
}
