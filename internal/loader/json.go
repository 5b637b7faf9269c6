package loader

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// FromJSON parses a tree description and builds the corresponding
// pkg/ast tree. Every node object carries a "kind" field naming one of
// the nine variants; child subtrees are nested node objects under
// variant-specific keys.
func FromJSON(data []byte) (*ast.Node, error) {
	root := gjson.ParseBytes(data)
	if !root.Exists() {
		return nil, fmt.Errorf("loader: empty or invalid JSON document")
	}
	return buildNode(root)
}

func buildNode(r gjson.Result) (*ast.Node, error) {
	kind := r.Get("kind").String()
	switch kind {
	case "Decision":
		return buildDecision(r)
	case "Consequence":
		return buildConsequence(r)
	case "Rule":
		return buildRule(r)
	case "LogicOp":
		return buildLogicOp(r)
	case "Comparison":
		return buildComparison(r)
	case "Identifier":
		return ast.NewIdentifier(r.Get("name").String(), ast.Position{})
	case "Literal":
		return ast.NewLiteral(buildValue(r.Get("value")), ast.Position{})
	case "Chain":
		return buildChain(r)
	case "Program":
		return buildProgram(r)
	default:
		return nil, fmt.Errorf("loader: unknown node kind %q", kind)
	}
}

func buildOptional(r gjson.Result) (*ast.Node, error) {
	if !r.Exists() {
		return nil, nil
	}
	return buildNode(r)
}

func buildDecision(r gjson.Result) (*ast.Node, error) {
	cond, err := buildNode(r.Get("condition"))
	if err != nil {
		return nil, fmt.Errorf("loader: Decision.condition: %w", err)
	}
	trueBranch, err := buildOptional(r.Get("true_branch"))
	if err != nil {
		return nil, fmt.Errorf("loader: Decision.true_branch: %w", err)
	}
	falseBranch, err := buildOptional(r.Get("false_branch"))
	if err != nil {
		return nil, fmt.Errorf("loader: Decision.false_branch: %w", err)
	}
	condKind := parseConditionKind(r.Get("condition_kind").String())
	priority := int(r.Get("priority").Int())
	return ast.NewDecision(cond, trueBranch, falseBranch, condKind, priority, ast.Position{})
}

func buildConsequence(r gjson.Result) (*ast.Node, error) {
	action := r.Get("action").String()
	consKind := parseConsequenceKind(r.Get("consequence_kind").String())
	weight := r.Get("weight").Float()
	return ast.NewConsequence(action, consKind, weight, ast.Position{})
}

func buildRule(r gjson.Result) (*ast.Node, error) {
	body, err := buildNode(r.Get("body"))
	if err != nil {
		return nil, fmt.Errorf("loader: Rule.body: %w", err)
	}
	active := true
	if r.Get("active").Exists() {
		active = r.Get("active").Bool()
	}
	return ast.NewRule(r.Get("name").String(), body, active, ast.Position{})
}

func buildLogicOp(r gjson.Result) (*ast.Node, error) {
	op := parseLogicOpKind(r.Get("op").String())
	left, err := buildNode(r.Get("left"))
	if err != nil {
		return nil, fmt.Errorf("loader: LogicOp.left: %w", err)
	}
	var right *ast.Node
	if op != ast.LogicNot {
		right, err = buildNode(r.Get("right"))
		if err != nil {
			return nil, fmt.Errorf("loader: LogicOp.right: %w", err)
		}
	}
	return ast.NewLogicOp(op, left, right, ast.Position{})
}

func buildComparison(r gjson.Result) (*ast.Node, error) {
	left, err := buildNode(r.Get("left"))
	if err != nil {
		return nil, fmt.Errorf("loader: Comparison.left: %w", err)
	}
	right, err := buildNode(r.Get("right"))
	if err != nil {
		return nil, fmt.Errorf("loader: Comparison.right: %w", err)
	}
	return ast.NewComparison(parseComparisonOp(r.Get("op").String()), left, right, ast.Position{})
}

func buildChain(r gjson.Result) (*ast.Node, error) {
	first, err := buildNode(r.Get("first"))
	if err != nil {
		return nil, fmt.Errorf("loader: Chain.first: %w", err)
	}
	second, err := buildNode(r.Get("second"))
	if err != nil {
		return nil, fmt.Errorf("loader: Chain.second: %w", err)
	}
	return ast.NewChain(first, second, parseChainKind(r.Get("chain_kind").String()), ast.Position{})
}

func buildProgram(r gjson.Result) (*ast.Node, error) {
	var children []*ast.Node
	for _, c := range r.Get("children").Array() {
		child, err := buildNode(c)
		if err != nil {
			return nil, fmt.Errorf("loader: Program.children: %w", err)
		}
		children = append(children, child)
	}
	return ast.NewProgram(children, ast.Position{})
}

func buildValue(r gjson.Result) value.Value {
	switch r.Get("type").String() {
	case "bool":
		return value.Bool(r.Get("value").Bool())
	case "number":
		return value.Number(r.Get("value").Float())
	case "string":
		return value.String(r.Get("value").String())
	default:
		return value.Null
	}
}

func parseConditionKind(s string) ast.ConditionKind {
	switch s {
	case "Threshold":
		return ast.ConditionThreshold
	case "Composite":
		return ast.ConditionComposite
	case "Custom":
		return ast.ConditionCustom
	default:
		return ast.ConditionDefault
	}
}

func parseConsequenceKind(s string) ast.ConsequenceKind {
	switch s {
	case "Update":
		return ast.ConsequenceUpdate
	case "Notify":
		return ast.ConsequenceNotify
	case "Log":
		return ast.ConsequenceLog
	case "Calculate":
		return ast.ConsequenceCalculate
	default:
		return ast.ConsequenceAny
	}
}

func parseLogicOpKind(s string) ast.LogicOpKind {
	switch s {
	case "Or":
		return ast.LogicOr
	case "Not":
		return ast.LogicNot
	default:
		return ast.LogicAnd
	}
}

func parseComparisonOp(s string) ast.ComparisonOp {
	switch s {
	case "Ne":
		return ast.CmpNe
	case "Lt":
		return ast.CmpLt
	case "Le":
		return ast.CmpLe
	case "Gt":
		return ast.CmpGt
	case "Ge":
		return ast.CmpGe
	default:
		return ast.CmpEq
	}
}

func parseChainKind(s string) ast.ChainKind {
	if s == "Parallel" {
		return ast.ChainParallel
	}
	return ast.ChainSequential
}
