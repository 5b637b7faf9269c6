package ast

import (
	"errors"

	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// ErrNilArgument is returned by constructors when a required subtree or
// string argument is missing.
var ErrNilArgument = errors.New("ast: nil or empty required argument")

func attach(parent, child *Node) {
	if child != nil {
		child.parent = parent
	}
}

// NewDecision builds a Decision node. The condition subtree is required;
// either branch may be nil (spec §4.4: a missing branch yields the
// condition's truthiness).
func NewDecision(condition, trueBranch, falseBranch *Node, kind ConditionKind, priority int, pos Position) (*Node, error) {
	if condition == nil {
		return nil, ErrNilArgument
	}
	if !kind.valid() {
		return nil, errors.New("ast: condition kind out of range")
	}
	n := &Node{
		kind:        KindDecision,
		pos:         pos,
		condition:   condition,
		trueBranch:  trueBranch,
		falseBranch: falseBranch,
		condKind:    kind,
		priority:    priority,
	}
	attach(n, condition)
	attach(n, trueBranch)
	attach(n, falseBranch)
	return n, nil
}

// NewConsequence builds a Consequence node. A zero weight defaults to 1.0
// per spec §3.
func NewConsequence(action string, kind ConsequenceKind, weight float64, pos Position) (*Node, error) {
	if action == "" {
		return nil, ErrNilArgument
	}
	if !kind.valid() {
		return nil, errors.New("ast: consequence kind out of range")
	}
	if weight == 0 {
		weight = 1.0
	}
	return &Node{
		kind:     KindConsequence,
		pos:      pos,
		action:   action,
		consKind: kind,
		weight:   weight,
	}, nil
}

// NewRule builds a Rule node wrapping a body subtree.
func NewRule(name string, body *Node, active bool, pos Position) (*Node, error) {
	if name == "" || body == nil {
		return nil, ErrNilArgument
	}
	n := &Node{
		kind:   KindRule,
		pos:    pos,
		name:   name,
		body:   body,
		active: active,
	}
	attach(n, body)
	return n, nil
}

// NewLogicOp builds a LogicOp node. Not uses left only: a right operand
// passed with Not is ignored and not attached. And/Or require a non-nil
// right.
func NewLogicOp(op LogicOpKind, left, right *Node, pos Position) (*Node, error) {
	if !op.valid() || left == nil {
		return nil, ErrNilArgument
	}
	if op == LogicNot {
		right = nil
	} else if right == nil {
		return nil, ErrNilArgument
	}
	n := &Node{
		kind:    KindLogicOp,
		pos:     pos,
		logicOp: op,
		left:    left,
		right:   right,
	}
	attach(n, left)
	attach(n, right)
	return n, nil
}

// NewComparison builds a Comparison node.
func NewComparison(op ComparisonOp, left, right *Node, pos Position) (*Node, error) {
	if !op.valid() || left == nil || right == nil {
		return nil, ErrNilArgument
	}
	n := &Node{
		kind:  KindComparison,
		pos:   pos,
		cmpOp: op,
		left:  left,
		right: right,
	}
	attach(n, left)
	attach(n, right)
	return n, nil
}

// NewIdentifier builds an Identifier node referencing a variable name.
func NewIdentifier(name string, pos Position) (*Node, error) {
	if name == "" {
		return nil, ErrNilArgument
	}
	return &Node{kind: KindIdentifier, pos: pos, name: name}, nil
}

// NewLiteral builds a Literal node wrapping a runtime value.
func NewLiteral(v value.Value, pos Position) (*Node, error) {
	return &Node{kind: KindLiteral, pos: pos, literal: v}, nil
}

// NewChain builds a Chain node composing two subtrees.
func NewChain(first, second *Node, kind ChainKind, pos Position) (*Node, error) {
	if first == nil || second == nil || !kind.valid() {
		return nil, ErrNilArgument
	}
	n := &Node{
		kind:      KindChain,
		pos:       pos,
		first:     first,
		second:    second,
		chainKind: kind,
	}
	attach(n, first)
	attach(n, second)
	return n, nil
}

// NewProgram builds a Program node from an ordered list of children. The
// slice is copied so later external mutation of the caller's slice cannot
// corrupt the tree.
func NewProgram(children []*Node, pos Position) (*Node, error) {
	n := &Node{kind: KindProgram, pos: pos}
	n.children = make([]*Node, 0, len(children))
	for _, c := range children {
		if c == nil {
			return nil, ErrNilArgument
		}
		n.children = append(n.children, c)
		attach(n, c)
	}
	return n, nil
}

// AddChild appends child to a Program node's generic child list, updating
// the child's parent pointer. It is an error to call AddChild on any other
// node variant.
func AddChild(parent, child *Node) error {
	if parent == nil || child == nil {
		return ErrNilArgument
	}
	if parent.kind != KindProgram {
		return errors.New("ast: AddChild requires a Program node")
	}
	parent.children = append(parent.children, child)
	attach(parent, child)
	return nil
}

// RemoveChild removes the child at index from a Program node's generic
// child list. The removed child's parent pointer is cleared.
func RemoveChild(parent *Node, index int) error {
	if parent == nil {
		return ErrNilArgument
	}
	if parent.kind != KindProgram {
		return errors.New("ast: RemoveChild requires a Program node")
	}
	if index < 0 || index >= len(parent.children) {
		return errors.New("ast: child index out of range")
	}
	removed := parent.children[index]
	parent.children = append(parent.children[:index], parent.children[index+1:]...)
	removed.parent = nil
	return nil
}

// GetChild returns the child at index from a Program node's generic child
// list, or nil if out of range or parent is not a Program.
func GetChild(parent *Node, index int) *Node {
	if parent == nil || parent.kind != KindProgram {
		return nil
	}
	if index < 0 || index >= len(parent.children) {
		return nil
	}
	return parent.children[index]
}
