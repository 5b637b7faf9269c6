package ast

import "github.com/aitzazisstuffed/reasons/pkg/value"

// Kind discriminates the variant a Node holds.
type Kind uint8

const (
	KindDecision Kind = iota
	KindConsequence
	KindRule
	KindLogicOp
	KindComparison
	KindIdentifier
	KindLiteral
	KindChain
	KindProgram
)

// String names the Kind, used in trace messages and validation errors.
func (k Kind) String() string {
	switch k {
	case KindDecision:
		return "Decision"
	case KindConsequence:
		return "Consequence"
	case KindRule:
		return "Rule"
	case KindLogicOp:
		return "LogicOp"
	case KindComparison:
		return "Comparison"
	case KindIdentifier:
		return "Identifier"
	case KindLiteral:
		return "Literal"
	case KindChain:
		return "Chain"
	case KindProgram:
		return "Program"
	default:
		return "Unknown"
	}
}

func (k Kind) valid() bool { return k <= KindProgram }

// ConditionKind tags the nature of a Decision's condition for tracing and
// explanation purposes. Spec §3 leaves the enumeration open ("condition-kind
// tag"); this set is the implementer's choice.
type ConditionKind uint8

const (
	ConditionDefault ConditionKind = iota
	ConditionThreshold
	ConditionComposite
	ConditionCustom
)

func (k ConditionKind) valid() bool { return k <= ConditionCustom }

// ConsequenceKind classifies a Consequence node for handler dispatch.
type ConsequenceKind uint8

const (
	ConsequenceAny ConsequenceKind = iota
	ConsequenceUpdate
	ConsequenceNotify
	ConsequenceLog
	ConsequenceCalculate
)

func (k ConsequenceKind) String() string {
	switch k {
	case ConsequenceAny:
		return "Any"
	case ConsequenceUpdate:
		return "Update"
	case ConsequenceNotify:
		return "Notify"
	case ConsequenceLog:
		return "Log"
	case ConsequenceCalculate:
		return "Calculate"
	default:
		return "Unknown"
	}
}

func (k ConsequenceKind) valid() bool { return k <= ConsequenceCalculate }

// LogicOpKind identifies the Boolean connective of a LogicOp node.
type LogicOpKind uint8

const (
	LogicAnd LogicOpKind = iota
	LogicOr
	LogicNot
)

func (k LogicOpKind) String() string {
	switch k {
	case LogicAnd:
		return "And"
	case LogicOr:
		return "Or"
	case LogicNot:
		return "Not"
	default:
		return "Unknown"
	}
}

func (k LogicOpKind) valid() bool { return k <= LogicNot }

// ComparisonOp identifies the relational operator of a Comparison node.
type ComparisonOp uint8

const (
	CmpEq ComparisonOp = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

func (op ComparisonOp) String() string {
	switch op {
	case CmpEq:
		return "Eq"
	case CmpNe:
		return "Ne"
	case CmpLt:
		return "Lt"
	case CmpLe:
		return "Le"
	case CmpGt:
		return "Gt"
	case CmpGe:
		return "Ge"
	default:
		return "Unknown"
	}
}

func (op ComparisonOp) valid() bool { return op <= CmpGe }

// ChainKind identifies whether a Chain composes its subtrees sequentially
// (AND-like) or in parallel (OR-like).
type ChainKind uint8

const (
	ChainSequential ChainKind = iota
	ChainParallel
)

func (k ChainKind) String() string {
	switch k {
	case ChainSequential:
		return "Sequential"
	case ChainParallel:
		return "Parallel"
	default:
		return "Unknown"
	}
}

func (k ChainKind) valid() bool { return k <= ChainParallel }

// Position is the source location carried by every node.
type Position struct {
	Line   int
	Column int
}

// Node is the single discriminated-union AST node type. Only the fields
// relevant to Kind are meaningful; the rest are zero. Children are owned by
// the node; Parent is a weak, non-owning back-reference maintained by the
// constructors and by AddChild/RemoveChild.
type Node struct {
	kind Kind
	pos  Position

	parent *Node

	// Decision
	condition   *Node
	trueBranch  *Node
	falseBranch *Node
	condKind    ConditionKind
	priority    int

	// Consequence
	action        string
	consKind      ConsequenceKind
	weight        float64
	executed      bool

	// Rule
	name      string
	body      *Node
	active    bool
	execCount int

	// LogicOp / Comparison (share left/right)
	logicOp LogicOpKind
	cmpOp   ComparisonOp
	left    *Node
	right   *Node

	// Identifier reuses name

	// Literal
	literal value.Value

	// Chain
	first     *Node
	second    *Node
	chainKind ChainKind

	// Program
	children []*Node
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Pos reports the node's source position.
func (n *Node) Pos() Position { return n.pos }

// Parent returns the node's weak back-reference, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Decision accessors.
func (n *Node) Condition() *Node         { return n.condition }
func (n *Node) TrueBranch() *Node        { return n.trueBranch }
func (n *Node) FalseBranch() *Node       { return n.falseBranch }
func (n *Node) ConditionKind() ConditionKind { return n.condKind }
func (n *Node) Priority() int            { return n.priority }

// Consequence accessors.
func (n *Node) Action() string                   { return n.action }
func (n *Node) ConsequenceKind() ConsequenceKind  { return n.consKind }
func (n *Node) Weight() float64                   { return n.weight }
func (n *Node) Executed() bool                    { return n.executed }
func (n *Node) SetExecuted(v bool)                { n.executed = v }

// Rule accessors.
func (n *Node) Name() string         { return n.name }
func (n *Node) Body() *Node          { return n.body }
func (n *Node) Active() bool         { return n.active }
func (n *Node) ExecutionCount() int  { return n.execCount }
func (n *Node) IncrementExecutionCount() { n.execCount++ }

// LogicOp accessors.
func (n *Node) LogicOp() LogicOpKind { return n.logicOp }

// Comparison accessors.
func (n *Node) ComparisonOp() ComparisonOp { return n.cmpOp }

// Shared left/right accessors (LogicOp, Comparison).
func (n *Node) Left() *Node  { return n.left }
func (n *Node) Right() *Node { return n.right }

// Literal accessor.
func (n *Node) Literal() value.Value { return n.literal }

// Chain accessors.
func (n *Node) First() *Node        { return n.first }
func (n *Node) Second() *Node       { return n.second }
func (n *Node) ChainKind() ChainKind { return n.chainKind }

// Program accessors.
func (n *Node) Children() []*Node { return n.children }
