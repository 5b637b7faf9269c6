package ast

import "fmt"

// MaxTreeDepth is the maximum allowed depth of a valid tree (spec §3).
const MaxTreeDepth = 1000

// Validate checks the structural invariants from spec §3: maximum depth,
// parent-pointer consistency (the weak back-reference must point at the
// node that actually owns the child), enum tags within their declared
// range, and non-empty required strings on Rule, Identifier, and
// Consequence nodes (Decision carries no string payload of its own).
// It returns the first violation found during a preorder walk.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("ast: validate: nil root")
	}
	if d := Depth(root); d > MaxTreeDepth {
		return fmt.Errorf("ast: validate: depth %d exceeds maximum %d", d, MaxTreeDepth)
	}

	var err error
	TraversePreorder(root, func(n *Node) bool {
		if e := validateNode(n); e != nil {
			err = e
			return false
		}
		for _, c := range n.childNodes() {
			if c != nil && c.parent != n {
				err = fmt.Errorf("ast: validate: child of %s has inconsistent parent pointer", n.kind)
				return false
			}
		}
		return true
	})
	return err
}

func validateNode(n *Node) error {
	if !n.kind.valid() {
		return fmt.Errorf("ast: validate: node kind %d out of range", n.kind)
	}
	switch n.kind {
	case KindDecision:
		if !n.condKind.valid() {
			return fmt.Errorf("ast: validate: condition kind %d out of range", n.condKind)
		}
		if n.condition == nil {
			return fmt.Errorf("ast: validate: decision missing condition")
		}
	case KindConsequence:
		if !n.consKind.valid() {
			return fmt.Errorf("ast: validate: consequence kind %d out of range", n.consKind)
		}
		if n.action == "" {
			return fmt.Errorf("ast: validate: consequence has empty action")
		}
	case KindRule:
		if n.name == "" {
			return fmt.Errorf("ast: validate: rule has empty name")
		}
		if n.body == nil {
			return fmt.Errorf("ast: validate: rule missing body")
		}
	case KindLogicOp:
		if !n.logicOp.valid() {
			return fmt.Errorf("ast: validate: logic op %d out of range", n.logicOp)
		}
	case KindComparison:
		if !n.cmpOp.valid() {
			return fmt.Errorf("ast: validate: comparison op %d out of range", n.cmpOp)
		}
	case KindIdentifier:
		if n.name == "" {
			return fmt.Errorf("ast: validate: identifier has empty name")
		}
	case KindChain:
		if !n.chainKind.valid() {
			return fmt.Errorf("ast: validate: chain kind %d out of range", n.chainKind)
		}
	}
	return nil
}
