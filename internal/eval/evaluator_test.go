package eval_test

import (
	"testing"

	"github.com/aitzazisstuffed/reasons/internal/eval"
	"github.com/aitzazisstuffed/reasons/internal/explain"
	"github.com/aitzazisstuffed/reasons/internal/runtime"
	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

func newEvaluator(cfg runtime.Config) (*eval.Evaluator, *runtime.Env, *trace.Tracer) {
	env := runtime.New(cfg)
	tr := trace.New()
	ex := explain.New()
	return eval.New(env, tr, ex), env, tr
}

func litNode(t *testing.T, v value.Value) *ast.Node {
	t.Helper()
	n, err := ast.NewLiteral(v, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEvalDecisionTakesTrueBranch(t *testing.T) {
	cfg := runtime.DefaultConfig()
	ev, _, tr := newEvaluator(cfg)

	cond := litNode(t, value.Bool(true))
	trueBranch := litNode(t, value.String("granted"))
	falseBranch := litNode(t, value.String("denied"))
	decision, err := ast.NewDecision(cond, trueBranch, falseBranch, ast.ConditionDefault, 0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(decision)
	if result.AsString() != "granted" {
		t.Fatalf("result = %v, want granted", result)
	}
	if tr.NodeExecutionCount(falseBranch) != 0 {
		t.Fatal("expected false branch never entered")
	}
	if tr.DecisionPathString() != "TRUE" {
		t.Fatalf("decision path = %q, want TRUE", tr.DecisionPathString())
	}
}

func TestEvalAndShortCircuitsRightOperand(t *testing.T) {
	cfg := runtime.DefaultConfig()
	ev, _, tr := newEvaluator(cfg)

	left := litNode(t, value.Bool(false))
	right := litNode(t, value.Bool(true))
	op, err := ast.NewLogicOp(ast.LogicAnd, left, right, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(op)
	if result.AsBool() != false {
		t.Fatalf("result = %v, want false", result)
	}
	if tr.NodeExecutionCount(right) != 0 {
		t.Fatal("expected right operand never visited under short-circuit And(false, X)")
	}
}

func TestEvalRuleSelfRecursionFails(t *testing.T) {
	cfg := runtime.DefaultConfig()
	ev, env, _ := newEvaluator(cfg)

	program, err := ast.NewProgram(nil, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	rule, err := ast.NewRule("self", program, true, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	// a rule whose body's child list includes the rule itself: evaluating
	// the rule re-enters the same rule node while it is already on the
	// call stack.
	if err := ast.AddChild(program, rule); err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(rule)
	if !result.IsError() {
		t.Fatalf("expected Error from self-recursive rule, got %v", result)
	}
	if !env.HadError() {
		t.Fatal("expected last-error slot to be set")
	}
}

func TestEvalRecursionDepthBoundedRestoresIdle(t *testing.T) {
	cfg := runtime.DefaultConfig()
	cfg.MaxRecursionDepth = 3
	ev, _, _ := newEvaluator(cfg)

	deepest := litNode(t, value.Bool(true))
	node := deepest
	for i := 0; i < 10; i++ {
		wrapped, err := ast.NewLogicOp(ast.LogicNot, node, nil, ast.Position{})
		if err != nil {
			t.Fatal(err)
		}
		node = wrapped
	}

	result := ev.EvalTree(node)
	if !result.IsError() {
		t.Fatalf("expected Error once recursion cap exceeded, got %v", result)
	}
	if ev.State() != eval.StateIdle {
		t.Fatalf("evaluator state = %v, want Idle after EvalTree returns", ev.State())
	}
}

func TestEvalComparisonTypeMismatch(t *testing.T) {
	cfg := runtime.DefaultConfig()
	ev, env, _ := newEvaluator(cfg)

	left := litNode(t, value.Number(1))
	right := litNode(t, value.String("x"))
	cmp, err := ast.NewComparison(ast.CmpEq, left, right, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(cmp)
	if !result.IsError() {
		t.Fatalf("expected Error for Number/String comparison, got %v", result)
	}
	if !env.HadError() {
		t.Fatal("expected last-error slot to be set")
	}
}

func TestEvalProgramReturnsLastChild(t *testing.T) {
	cfg := runtime.DefaultConfig()
	ev, _, _ := newEvaluator(cfg)

	first := litNode(t, value.Number(1))
	second := litNode(t, value.Number(2))
	program, err := ast.NewProgram([]*ast.Node{first, second}, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(program)
	if result.AsNumber() != 2 {
		t.Fatalf("result = %v, want 2", result)
	}
}

func TestEvalConsequenceDelegatesToHandler(t *testing.T) {
	cfg := runtime.DefaultConfig()
	ev, env, tr := newEvaluator(cfg)

	env.RegisterConsequenceHandler(ast.ConsequenceAny, func(e *runtime.Env, node *ast.Node) runtime.ConsequenceResult {
		return runtime.ConsequenceResult{Handled: true, Success: true, HasMessage: true, Message: "applied"}
	}, "test-handler")

	action, err := ast.NewConsequence("apply_discount", ast.ConsequenceUpdate, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(action)
	if result.AsString() != "applied" {
		t.Fatalf("result = %v, want applied", result)
	}
	if !action.Executed() {
		t.Fatal("expected consequence node marked executed")
	}
	if tr.GetStats().ConsequencesSucceeded != 1 {
		t.Fatalf("ConsequencesSucceeded = %d, want 1", tr.GetStats().ConsequencesSucceeded)
	}
}

func TestEvalChainGolfModeSkipsSecondOperand(t *testing.T) {
	cfg := runtime.DefaultConfig()
	cfg.GolfMode = true
	ev, _, tr := newEvaluator(cfg)

	first := litNode(t, value.Bool(false))
	second := litNode(t, value.Bool(true))
	chain, err := ast.NewChain(first, second, ast.ChainSequential, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(chain)
	if result.AsBool() != false {
		t.Fatalf("result = %v, want false", result)
	}
	if tr.NodeExecutionCount(second) != 0 {
		t.Fatal("expected second operand skipped under golf mode")
	}
}
