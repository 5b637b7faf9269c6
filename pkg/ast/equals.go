package ast

import "github.com/aitzazisstuffed/reasons/pkg/value"

// Equal reports whether a and b are structurally identical: same variant,
// same operator/kind tags and payload strings, and recursively equal
// children. Positions are not compared — two trees built from different
// source spans but the same shape are still Equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindDecision:
		return a.condKind == b.condKind &&
			a.priority == b.priority &&
			Equal(a.condition, b.condition) &&
			Equal(a.trueBranch, b.trueBranch) &&
			Equal(a.falseBranch, b.falseBranch)
	case KindConsequence:
		return a.action == b.action &&
			a.consKind == b.consKind &&
			a.weight == b.weight
	case KindRule:
		return a.name == b.name &&
			a.active == b.active &&
			Equal(a.body, b.body)
	case KindLogicOp:
		return a.logicOp == b.logicOp &&
			Equal(a.left, b.left) &&
			Equal(a.right, b.right)
	case KindComparison:
		return a.cmpOp == b.cmpOp &&
			Equal(a.left, b.left) &&
			Equal(a.right, b.right)
	case KindIdentifier:
		return a.name == b.name
	case KindLiteral:
		return value.Equal(a.literal, b.literal)
	case KindChain:
		return a.chainKind == b.chainKind &&
			Equal(a.first, b.first) &&
			Equal(a.second, b.second)
	case KindProgram:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
