package treefmt

import "strings"

// Node is a labeled tree that renders itself. The node passed to [Fprint]
// or [Marshal] is drawn by its title; RenderTree draws its descendants.
type Node struct {
	Label    string
	Children []*Node
}

// NewNode returns a node with the given children.
func NewNode(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Add appends a child labeled label and returns it.
func (n *Node) Add(label string) *Node {
	child := &Node{Label: label}
	n.Children = append(n.Children, child)
	return child
}

// Len returns the number of nodes below n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	total := len(n.Children)
	for _, c := range n.Children {
		total += c.Len()
	}
	return total
}

// RenderTree writes the descendants of n, one level per generation.
func (n *Node) RenderTree(f *Formatter) error {
	if n == nil {
		return nil
	}
	return renderChildren(f, n.Children, false)
}

// String renders n with the default glyphs.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	// strings.Builder never fails a write.
	_ = Fprint(&sb, n.Label, n)
	return sb.String()
}

func renderChildren(f *Formatter, children []*Node, isLastBranch bool) error {
	if len(children) == 0 {
		return nil
	}
	f.BeginLevel(isLastBranch)
	for i, c := range children {
		last := i == len(children)-1
		if err := f.Write(last, c.Label); err != nil {
			return err
		}
		if err := renderChildren(f, c.Children, last); err != nil {
			return err
		}
	}
	f.EndLevel()
	return nil
}
