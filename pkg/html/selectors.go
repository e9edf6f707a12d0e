package html

import "strings"

// Find returns the first element under root (excluding root itself)
// matching a simple selector: "#id", ".class", or a tag name.
// Returns nil when nothing matches.
func Find(root *Node, selector string) *Node {
	var result *Node
	Walk(root, func(n *Node) bool {
		if n == root {
			return false
		}
		if Matches(n, selector) {
			result = n
			return true
		}
		return false
	})
	return result
}

// FindAll returns every element under root matching the selector, in
// document order.
func FindAll(root *Node, selector string) []*Node {
	var results []*Node
	Walk(root, func(n *Node) bool {
		if n != root && Matches(n, selector) {
			results = append(results, n)
		}
		return false
	})
	return results
}

// Closest walks up from node (inclusive) and returns the first ancestor
// matching the selector, or nil.
func Closest(node *Node, selector string) *Node {
	for cur := node; cur != nil; cur = cur.Parent {
		if cur.Type != ElementNode || cur.TagName == "document" {
			continue
		}
		if Matches(cur, selector) {
			return cur
		}
	}
	return nil
}

// Matches tests a node against a simple selector.
func Matches(n *Node, selector string) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" || n.Type != ElementNode {
		return false
	}
	switch selector[0] {
	case '#':
		id, _ := n.GetAttribute("id")
		return id != "" && id == selector[1:]
	case '.':
		return n.HasClass(selector[1:])
	default:
		return strings.EqualFold(n.TagName, selector)
	}
}
