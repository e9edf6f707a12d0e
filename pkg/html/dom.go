package html

import (
	"strings"

	"stickybar/pkg/css"
)

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

type Document struct {
	Root    *Node
	Scripts []string // JavaScript gathered from <script> tags, in order
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
	}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// AddChild appends a child node and sets up the parent relationship.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
}

// RemoveChild removes the given child, clears its parent pointer, and
// returns it. Returns nil if child is not present.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Style returns the node's parsed inline style. Mutations do not write
// back; use SetStyle or ApplyStyle for that.
func (n *Node) Style() *css.Style {
	attr, _ := n.GetAttribute("style")
	return css.ParseInline(attr)
}

// SetStyle replaces the node's style attribute with the serialized form of s.
func (n *Node) SetStyle(s *css.Style) {
	n.SetAttribute("style", s.Inline())
}

// ApplyStyle overlays s onto the node's current inline style. Declarations
// with empty values clear the corresponding property.
func (n *Node) ApplyStyle(s *css.Style) {
	cur := n.Style()
	cur.Merge(s)
	n.SetStyle(cur)
}

// ClearStyle removes all inline styling from the node.
func (n *Node) ClearStyle() {
	n.SetAttribute("style", "")
}

func (n *Node) classes() []string {
	attr, _ := n.GetAttribute("class")
	if attr == "" {
		return nil
	}
	return strings.Fields(attr)
}

func (n *Node) setClasses(classes []string) {
	n.SetAttribute("class", strings.Join(classes, " "))
}

func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes() {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) AddClass(name string) {
	if name == "" || n.HasClass(name) {
		return
	}
	n.setClasses(append(n.classes(), name))
}

func (n *Node) RemoveClass(name string) {
	cls := n.classes()
	out := cls[:0]
	for _, c := range cls {
		if c != name {
			out = append(out, c)
		}
	}
	n.setClasses(out)
}

// ToggleClass adds the class when on is true and removes it otherwise.
func (n *Node) ToggleClass(name string, on bool) {
	if on {
		n.AddClass(name)
	} else {
		n.RemoveClass(name)
	}
}

// WrapChildren moves all of n's children into a fresh element that becomes
// n's sole child, and returns the new wrapper. Used to install the inner
// sticky wrapper.
func (n *Node) WrapChildren(tagName, class string) *Node {
	wrapper := &Node{
		Type:       ElementNode,
		TagName:    tagName,
		Attributes: map[string]string{"class": class},
	}
	for _, c := range n.Children {
		c.Parent = wrapper
		wrapper.Children = append(wrapper.Children, c)
	}
	n.Children = n.Children[:0]
	n.AddChild(wrapper)
	return wrapper
}

// Unwrap replaces wrapper with its own children in wrapper's parent,
// undoing WrapChildren. No-op when wrapper has no parent.
func Unwrap(wrapper *Node) {
	parent := wrapper.Parent
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c != wrapper {
			continue
		}
		rest := append([]*Node{}, parent.Children[i+1:]...)
		parent.Children = parent.Children[:i]
		for _, gc := range wrapper.Children {
			gc.Parent = parent
			parent.Children = append(parent.Children, gc)
		}
		parent.Children = append(parent.Children, rest...)
		wrapper.Children = nil
		wrapper.Parent = nil
		return
	}
}

// Walk performs a depth-first walk over element nodes. The callback
// returns true to stop the walk.
func Walk(node *Node, fn func(*Node) bool) bool {
	if node.Type == ElementNode {
		if fn(node) {
			return true
		}
	}
	for _, child := range node.Children {
		if Walk(child, fn) {
			return true
		}
	}
	return false
}
