package ast

// Clone returns a deep copy of the subtree rooted at n, with fresh parent
// links throughout. The clone shares no *Node pointers with the original,
// so mutating one tree (active flags, execution counts, the Executed flag)
// never affects the other.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		kind:      n.kind,
		pos:       n.pos,
		condKind:  n.condKind,
		priority:  n.priority,
		action:    n.action,
		consKind:  n.consKind,
		weight:    n.weight,
		executed:  n.executed,
		name:      n.name,
		active:    n.active,
		execCount: n.execCount,
		logicOp:   n.logicOp,
		cmpOp:     n.cmpOp,
		literal:   n.literal,
		chainKind: n.chainKind,
	}

	c.condition = Clone(n.condition)
	c.trueBranch = Clone(n.trueBranch)
	c.falseBranch = Clone(n.falseBranch)
	c.body = Clone(n.body)
	c.left = Clone(n.left)
	c.right = Clone(n.right)
	c.first = Clone(n.first)
	c.second = Clone(n.second)

	attach(c, c.condition)
	attach(c, c.trueBranch)
	attach(c, c.falseBranch)
	attach(c, c.body)
	attach(c, c.left)
	attach(c, c.right)
	attach(c, c.first)
	attach(c, c.second)

	if n.children != nil {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = Clone(child)
			attach(c, c.children[i])
		}
	}

	return c
}
