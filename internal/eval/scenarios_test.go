package eval_test

import (
	"strings"
	"testing"

	"github.com/aitzazisstuffed/reasons/internal/eval"
	"github.com/aitzazisstuffed/reasons/internal/explain"
	"github.com/aitzazisstuffed/reasons/internal/runtime"
	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// TestScenarioLiteralEvaluation covers end-to-end scenario 1: a bare
// Literal(Bool(true)) evaluated against an empty environment returns
// Bool(true), and the trace records the node's Enter/Exit pair bracketed
// by the Main Evaluation section's Begin/End.
func TestScenarioLiteralEvaluation(t *testing.T) {
	ev, _, tr := newEvaluator(runtime.DefaultConfig())
	lit := litNode(t, value.Bool(true))

	result := ev.EvalTree(lit)
	if result.AsBool() != true {
		t.Fatalf("result = %v, want Bool(true)", result)
	}

	var kinds []trace.Kind
	for _, e := range tr.Entries() {
		kinds = append(kinds, e.Kind)
	}
	want := []trace.Kind{trace.KindBeginSection, trace.KindEnterNode, trace.KindExitNode, trace.KindEndSection}
	if len(kinds) != len(want) {
		t.Fatalf("entries = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("entries = %v, want %v", kinds, want)
		}
	}
}

// TestScenarioShortCircuitNoUndefinedError covers scenario 2: And(false,
// Identifier("missing")) with no "missing" variable bound must short
// circuit without visiting the identifier, so no undefined-variable error
// is ever set.
func TestScenarioShortCircuitNoUndefinedError(t *testing.T) {
	ev, env, _ := newEvaluator(runtime.DefaultConfig())

	left := litNode(t, value.Bool(false))
	right, err := ast.NewIdentifier("missing", ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	op, err := ast.NewLogicOp(ast.LogicAnd, left, right, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(op)
	if result.AsBool() != false {
		t.Fatalf("result = %v, want Bool(false)", result)
	}
	if env.HadError() {
		t.Fatalf("expected no error, got %q", env.ErrorMessage())
	}
}

// TestScenarioDecisionDispatch covers scenario 3: a numeric comparison
// feeding a Decision whose branches are Any-kind consequences, with a
// handler that reports success for every consequence.
func TestScenarioDecisionDispatch(t *testing.T) {
	ev, env, tr := newEvaluator(runtime.DefaultConfig())
	env.SetVariable("x", value.Number(7))
	env.RegisterConsequenceHandler(ast.ConsequenceAny, func(e *runtime.Env, node *ast.Node) runtime.ConsequenceResult {
		return runtime.ConsequenceResult{Handled: true, Success: true}
	}, "always-succeeds")

	xIdent, err := ast.NewIdentifier("x", ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	five := litNode(t, value.Number(5))
	cmp, err := ast.NewComparison(ast.CmpGt, xIdent, five, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	win, err := ast.NewConsequence("win", ast.ConsequenceAny, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	lose, err := ast.NewConsequence("lose", ast.ConsequenceAny, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	decision, err := ast.NewDecision(cmp, win, lose, ast.ConditionDefault, 0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	result := ev.EvalTree(decision)
	if result.AsBool() != true {
		t.Fatalf("result = %v, want Bool(true)", result)
	}

	stats := tr.GetStats()
	if stats.ConditionsEvaluated != 1 || stats.DecisionsMade != 1 || stats.ConsequencesSucceeded != 1 {
		t.Fatalf("stats = %+v, want one each of conditions/decisions/consequences", stats)
	}
	if tr.DecisionPathString() != "TRUE" {
		t.Fatalf("decision path = %q, want TRUE", tr.DecisionPathString())
	}
}

// TestScenarioWhyNotExplanation covers scenario 5: the same decision as
// scenario 3 but with x below the threshold, explained in WhyNot mode
// focused on the "win" consequence.
func TestScenarioWhyNotExplanation(t *testing.T) {
	env := runtime.New(runtime.DefaultConfig())
	env.SetVariable("x", value.Number(3))
	env.RegisterConsequenceHandler(ast.ConsequenceAny, func(e *runtime.Env, node *ast.Node) runtime.ConsequenceResult {
		return runtime.ConsequenceResult{Handled: true, Success: true}
	}, "always-succeeds")

	xIdent, err := ast.NewIdentifier("x", ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	five := litNode(t, value.Number(5))
	cmp, err := ast.NewComparison(ast.CmpGt, xIdent, five, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	win, err := ast.NewConsequence("win", ast.ConsequenceAny, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	lose, err := ast.NewConsequence("lose", ast.ConsequenceAny, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	decision, err := ast.NewDecision(cmp, win, lose, ast.ConditionDefault, 0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}

	tr := trace.New()
	explainer := explain.New()
	explainer.SetFocus(win)
	evaluator := eval.New(env, tr, explainer)
	evaluator.ExplainMode = explain.ModeWhyNot
	evaluator.ExplainFocus = win

	cfg := env.GetOption()
	cfg.ExplanationsEnabled = true
	env.SetOption(cfg)

	// x = 3 takes the false branch; the "lose" consequence succeeds, so the
	// decision's value is Bool(true).
	result := evaluator.EvalTree(decision)
	if result.AsBool() != true {
		t.Fatalf("result = %v, want Bool(true)", result)
	}

	narrative := evaluator.LastExplanation()
	if !strings.Contains(narrative, "took FALSE branch instead of required TRUE") {
		t.Fatalf("expected why-not mismatch explanation, got:\n%s", narrative)
	}
}

// TestScenarioTraceOverflow covers scenario 6: a cap of 10 with 15
// appended messages leaves exactly 10 entries (the first 5 evicted), so
// the first surviving entry is the 6th message.
func TestScenarioTraceOverflow(t *testing.T) {
	tr := trace.New()
	tr.SetMaxEntries(10)

	for i := 0; i < 15; i++ {
		tr.Message("message %d", i)
	}

	if tr.EntryCount() != 10 {
		t.Fatalf("EntryCount() = %d, want 10", tr.EntryCount())
	}
	if got := tr.Entries()[0].Message; got != "message 5" {
		t.Fatalf("first surviving entry = %q, want %q", got, "message 5")
	}
}
