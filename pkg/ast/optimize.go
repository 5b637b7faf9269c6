package ast

import "github.com/aitzazisstuffed/reasons/pkg/value"

// OptimizeForGolf returns a new tree with golf-mode peephole optimizations
// applied bottom-up: a Decision whose condition is the literal `true`
// collapses to a clone of its true branch; And/Or nodes with a literal
// operand fold to a literal per spec §4.1's truth table
// (And(false, ·) / And(·, false) -> false, Or(true, ·) / Or(·, true) -> true).
//
// Open question (spec §9): the upstream source is reported to check the
// *true branch* for a literal rather than the condition when collapsing a
// Decision — a check in the wrong place that happens to be harmless only
// when the true branch actually is the condition's literal echo. No
// original-language source survived retrieval to confirm the exact
// behavior, so this implementation follows the rule spec §4.1 states
// explicitly and that §8's testable property pins down: it checks the
// condition for Literal(true), not the true branch.
func OptimizeForGolf(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindDecision:
		cond := OptimizeForGolf(n.condition)
		trueB := OptimizeForGolf(n.trueBranch)
		falseB := OptimizeForGolf(n.falseBranch)
		if isLiteralBool(cond, true) && trueB != nil {
			return Clone(trueB)
		}
		nn := &Node{kind: KindDecision, pos: n.pos, condKind: n.condKind, priority: n.priority}
		nn.condition, nn.trueBranch, nn.falseBranch = cond, trueB, falseB
		attach(nn, cond)
		attach(nn, trueB)
		attach(nn, falseB)
		return nn

	case KindLogicOp:
		left := OptimizeForGolf(n.left)
		var right *Node
		if n.logicOp != LogicNot {
			right = OptimizeForGolf(n.right)
		}
		switch n.logicOp {
		case LogicAnd:
			if isLiteralBool(left, false) || isLiteralBool(right, false) {
				return literalBoolNode(false, n.pos)
			}
		case LogicOr:
			if isLiteralBool(left, true) || isLiteralBool(right, true) {
				return literalBoolNode(true, n.pos)
			}
		}
		nn := &Node{kind: KindLogicOp, pos: n.pos, logicOp: n.logicOp, left: left, right: right}
		attach(nn, left)
		attach(nn, right)
		return nn

	case KindComparison:
		left := OptimizeForGolf(n.left)
		right := OptimizeForGolf(n.right)
		nn := &Node{kind: KindComparison, pos: n.pos, cmpOp: n.cmpOp, left: left, right: right}
		attach(nn, left)
		attach(nn, right)
		return nn

	case KindRule:
		body := OptimizeForGolf(n.body)
		nn := &Node{kind: KindRule, pos: n.pos, name: n.name, active: n.active, execCount: n.execCount, body: body}
		attach(nn, body)
		return nn

	case KindChain:
		first := OptimizeForGolf(n.first)
		second := OptimizeForGolf(n.second)
		nn := &Node{kind: KindChain, pos: n.pos, chainKind: n.chainKind, first: first, second: second}
		attach(nn, first)
		attach(nn, second)
		return nn

	case KindProgram:
		nn := &Node{kind: KindProgram, pos: n.pos}
		nn.children = make([]*Node, 0, len(n.children))
		for _, c := range n.children {
			oc := OptimizeForGolf(c)
			nn.children = append(nn.children, oc)
			attach(nn, oc)
		}
		return nn

	default: // Consequence, Identifier, Literal: leaves, nothing to fold
		return Clone(n)
	}
}

func isLiteralBool(n *Node, want bool) bool {
	return n != nil && n.kind == KindLiteral && n.literal.Kind() == value.KindBool && n.literal.AsBool() == want
}

func literalBoolNode(b bool, pos Position) *Node {
	return &Node{kind: KindLiteral, pos: pos, literal: value.Bool(b)}
}
