package eval

import (
	"github.com/aitzazisstuffed/reasons/internal/rerrors"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// eval recursively dispatches on node's kind (spec §4.4). Every path that
// calls enter() matches it with a leave() before returning, even on error
// and Bounded returns, so the recursion-depth counter is always back at
// zero once EvalTree's outermost call returns.
func (ev *Evaluator) eval(node *ast.Node) value.Value {
	if node == nil {
		return value.Null
	}
	if !ev.enter() {
		ev.leave()
		if ev.tracing() {
			ev.tracer.Error(node, "recursion depth exceeded")
		}
		return value.Error("recursion depth exceeded")
	}
	defer ev.leave()

	if ev.tracing() {
		ev.tracer.EnterNode(node, "enter "+node.Kind().String())
	}

	var result value.Value
	switch node.Kind() {
	case ast.KindDecision:
		result = ev.evalDecision(node)
	case ast.KindConsequence:
		result = ev.evalConsequence(node)
	case ast.KindRule:
		result = ev.evalRule(node)
	case ast.KindLogicOp:
		result = ev.evalLogicOp(node)
	case ast.KindComparison:
		result = ev.evalComparison(node)
	case ast.KindIdentifier:
		result = ev.evalIdentifier(node)
	case ast.KindLiteral:
		result = node.Literal()
	case ast.KindChain:
		result = ev.evalChain(node)
	case ast.KindProgram:
		result = ev.evalProgram(node)
	default:
		result = value.Error("unknown node kind")
	}

	if result.IsError() {
		ev.fail()
	}

	if ev.tracing() {
		ev.tracer.ExitNode(node, "exit "+node.Kind().String())
	}
	return result
}

func (ev *Evaluator) evalDecision(node *ast.Node) value.Value {
	condValue := ev.eval(node.Condition())
	if condValue.IsError() {
		return condValue
	}
	truthy := condValue.Truthy()

	if ev.tracing() {
		ev.tracer.Condition(node, condValue)
	}

	var result value.Value
	branch := "FALSE"
	switch {
	case truthy && node.TrueBranch() != nil:
		branch = "TRUE"
		result = ev.eval(node.TrueBranch())
	case !truthy && node.FalseBranch() != nil:
		result = ev.eval(node.FalseBranch())
	default:
		if truthy {
			branch = "TRUE"
		}
		result = value.Bool(truthy)
	}

	if ev.tracing() {
		ev.tracer.Decision(node, branch)
	}
	return result
}

func (ev *Evaluator) evalConsequence(node *ast.Node) value.Value {
	result := ev.env.ExecuteConsequence(node, node.ConsequenceKind())
	node.SetExecuted(result.Success)

	var lifted value.Value
	switch {
	case result.HasMessage:
		lifted = value.String(result.Message)
	case result.HasValue:
		lifted = result.Value
	default:
		lifted = value.Bool(result.Success)
	}

	if ev.tracing() {
		msg := result.Message
		if !result.HasMessage {
			msg = lifted.String()
		}
		ev.tracer.Consequence(node, result.Success, msg)
	}
	return lifted
}

func (ev *Evaluator) evalRule(node *ast.Node) value.Value {
	if !node.Active() {
		return value.Bool(false)
	}
	if ev.onCallStack[node] {
		ev.env.SetError(rerrors.ErrRuleRecursion(node.Name()))
		if ev.tracing() {
			ev.tracer.Error(node, "rule self-recursion: "+node.Name())
		}
		return value.Error("rule self-recursion: " + node.Name())
	}

	ev.onCallStack[node] = true
	result := ev.eval(node.Body())
	delete(ev.onCallStack, node)

	node.IncrementExecutionCount()
	if ev.tracing() {
		ev.tracer.RuleExecution(node)
	}
	return result
}

func (ev *Evaluator) evalLogicOp(node *ast.Node) value.Value {
	left := ev.eval(node.Left())
	if left.IsError() {
		return left
	}
	if node.LogicOp() == ast.LogicNot {
		return value.Bool(!left.Truthy())
	}

	leftTruthy := left.Truthy()
	if node.LogicOp() == ast.LogicAnd && !leftTruthy {
		return value.Bool(false)
	}
	if node.LogicOp() == ast.LogicOr && leftTruthy {
		return value.Bool(true)
	}

	right := ev.eval(node.Right())
	if right.IsError() {
		return right
	}
	rightTruthy := right.Truthy()
	if node.LogicOp() == ast.LogicAnd {
		return value.Bool(leftTruthy && rightTruthy)
	}
	return value.Bool(leftTruthy || rightTruthy)
}

func (ev *Evaluator) evalComparison(node *ast.Node) value.Value {
	left := ev.eval(node.Left())
	right := ev.eval(node.Right())

	if left.Kind() != right.Kind() {
		return ev.comparisonTypeError(node, left, right)
	}

	switch left.Kind() {
	case value.KindNumber:
		return compareNumbers(node.ComparisonOp(), left.AsNumber(), right.AsNumber())
	case value.KindString:
		return compareOrdered(node.ComparisonOp(), value.Compare(left, right))
	case value.KindBool:
		switch node.ComparisonOp() {
		case ast.CmpEq:
			return value.Bool(left.AsBool() == right.AsBool())
		case ast.CmpNe:
			return value.Bool(left.AsBool() != right.AsBool())
		default:
			return ev.comparisonTypeError(node, left, right)
		}
	default:
		return ev.comparisonTypeError(node, left, right)
	}
}

func (ev *Evaluator) comparisonTypeError(node *ast.Node, left, right value.Value) value.Value {
	err := rerrors.ErrTypeMismatch(node.ComparisonOp().String(), left.Kind().String(), right.Kind().String())
	ev.env.SetError(err)
	if ev.tracing() {
		ev.tracer.Error(node, err.Message)
	}
	return value.Error(err.Message)
}

func compareNumbers(op ast.ComparisonOp, a, b float64) value.Value {
	switch op {
	case ast.CmpEq:
		return value.Bool(a == b)
	case ast.CmpNe:
		return value.Bool(a != b)
	case ast.CmpLt:
		return value.Bool(a < b)
	case ast.CmpLe:
		return value.Bool(a <= b)
	case ast.CmpGt:
		return value.Bool(a > b)
	case ast.CmpGe:
		return value.Bool(a >= b)
	default:
		return value.Error("unknown comparison operator")
	}
}

func compareOrdered(op ast.ComparisonOp, sign int) value.Value {
	switch op {
	case ast.CmpEq:
		return value.Bool(sign == 0)
	case ast.CmpNe:
		return value.Bool(sign != 0)
	case ast.CmpLt:
		return value.Bool(sign < 0)
	case ast.CmpLe:
		return value.Bool(sign <= 0)
	case ast.CmpGt:
		return value.Bool(sign > 0)
	case ast.CmpGe:
		return value.Bool(sign >= 0)
	default:
		return value.Error("unknown comparison operator")
	}
}

func (ev *Evaluator) evalIdentifier(node *ast.Node) value.Value {
	return ev.env.GetVariable(node.Name())
}

func (ev *Evaluator) evalChain(node *ast.Node) value.Value {
	first := ev.eval(node.First())
	if first.IsError() {
		return first
	}
	firstTruthy := first.Truthy()

	golf := ev.env.GetOption().GolfMode
	if golf && !firstTruthy {
		if ev.tracing() {
			ev.tracer.Message("golf mode short-circuit: skipped second operand of chain")
		}
		return value.Bool(false)
	}

	second := ev.eval(node.Second())
	if second.IsError() {
		return second
	}
	secondTruthy := second.Truthy()

	if node.ChainKind() == ast.ChainSequential {
		return value.Bool(firstTruthy && secondTruthy)
	}
	return value.Bool(firstTruthy || secondTruthy)
}

func (ev *Evaluator) evalProgram(node *ast.Node) value.Value {
	children := node.Children()
	result := value.Null
	for _, c := range children {
		result = ev.eval(c)
	}
	return result
}
