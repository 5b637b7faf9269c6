package ast

// childNodes returns the generic ordered child list for any variant,
// skipping nil slots. It is the single place that knows how each Kind's
// fixed-shape fields map onto "children" for traversal, counting,
// validation, and depth computation.
func (n *Node) childNodes() []*Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindDecision:
		out := make([]*Node, 0, 3)
		out = append(out, n.condition)
		if n.trueBranch != nil {
			out = append(out, n.trueBranch)
		}
		if n.falseBranch != nil {
			out = append(out, n.falseBranch)
		}
		return out
	case KindConsequence:
		return nil
	case KindRule:
		return []*Node{n.body}
	case KindLogicOp:
		if n.logicOp == LogicNot {
			return []*Node{n.left}
		}
		return []*Node{n.left, n.right}
	case KindComparison:
		return []*Node{n.left, n.right}
	case KindIdentifier, KindLiteral:
		return nil
	case KindChain:
		return []*Node{n.first, n.second}
	case KindProgram:
		return n.children
	default:
		return nil
	}
}

// TraversePreorder visits n and its descendants depth-first, node before
// children, left to right. If visitor returns false, traversal halts
// immediately (no further nodes, anywhere in the tree, are visited).
func TraversePreorder(n *Node, visitor func(*Node) bool) {
	if n == nil {
		return
	}
	traversePreorder(n, visitor)
}

func traversePreorder(n *Node, visitor func(*Node) bool) bool {
	if !visitor(n) {
		return false
	}
	for _, c := range n.childNodes() {
		if c == nil {
			continue
		}
		if !traversePreorder(c, visitor) {
			return false
		}
	}
	return true
}

// TraversePostorder visits n and its descendants depth-first, children
// before node, left to right. Unlike preorder, the visitor's return value
// does not halt traversal (spec §4.1 only defines halting for preorder).
func TraversePostorder(n *Node, visitor func(*Node) bool) {
	if n == nil {
		return
	}
	for _, c := range n.childNodes() {
		TraversePostorder(c, visitor)
	}
	visitor(n)
}

// Find returns the first node matching predicate in preorder, or nil.
func Find(root *Node, predicate func(*Node) bool) *Node {
	var found *Node
	TraversePreorder(root, func(n *Node) bool {
		if predicate(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// CountNodes returns the number of nodes in the subtree rooted at n.
func CountNodes(n *Node) int {
	count := 0
	TraversePreorder(n, func(*Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the maximum root-to-leaf node count of the subtree rooted
// at n (a single leaf node has depth 1).
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.childNodes() {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}
