package explain

import (
	"strings"
	"testing"

	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

func buildDecisionTree(t *testing.T) (*ast.Node, *ast.Node, *ast.Node) {
	t.Helper()
	cond, err := ast.NewLiteral(value.Bool(true), ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	trueCons, err := ast.NewConsequence("grant_discount", ast.ConsequenceUpdate, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	falseCons, err := ast.NewConsequence("deny_discount", ast.ConsequenceUpdate, 1.0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	decision, err := ast.NewDecision(cond, trueCons, falseCons, ast.ConditionDefault, 0, ast.Position{})
	if err != nil {
		t.Fatal(err)
	}
	return decision, trueCons, falseCons
}

func TestGenerateWhyIncludesDecisionPathAndConsequence(t *testing.T) {
	decision, trueCons, _ := buildDecisionTree(t)

	tr := trace.New()
	tr.EnterNode(decision, "enter")
	tr.Condition(decision, value.Bool(true))
	tr.Decision(decision, "TRUE")
	tr.EnterNode(trueCons, "enter")
	tr.Consequence(trueCons, true, "discount granted")
	tr.ExitNode(trueCons, "exit")
	tr.ExitNode(decision, "exit")

	ex := New()
	ex.SetMode(ModeWhy)
	narrative := ex.Generate(decision, tr)

	if !strings.Contains(narrative, "TRUE") {
		t.Fatalf("expected decision path in narrative, got:\n%s", narrative)
	}
	if !strings.Contains(narrative, "discount granted") {
		t.Fatalf("expected consequence execution in narrative, got:\n%s", narrative)
	}
}

func TestGenerateWhyNotReportsTakenBranch(t *testing.T) {
	decision, _, falseCons := buildDecisionTree(t)

	tr := trace.New()
	tr.EnterNode(decision, "enter")
	tr.Condition(decision, value.Bool(true))
	tr.Decision(decision, "TRUE")
	tr.ExitNode(decision, "exit")

	ex := New()
	ex.SetMode(ModeWhyNot)
	ex.SetFocus(falseCons)
	narrative := ex.Generate(decision, tr)

	if !strings.Contains(narrative, "took TRUE branch instead of required FALSE") {
		t.Fatalf("expected why-not mismatch explanation, got:\n%s", narrative)
	}
}

func TestGenerateAlternativesSuggestsReachableConsequence(t *testing.T) {
	decision, trueCons, _ := buildDecisionTree(t)

	tr := trace.New()
	tr.EnterNode(decision, "enter")
	tr.Condition(decision, value.Bool(false))
	tr.Decision(decision, "FALSE")
	tr.ExitNode(decision, "exit")

	ex := New()
	ex.SetMode(ModeFull)
	narrative := ex.Generate(decision, tr)

	if !strings.Contains(narrative, "grant_discount") {
		t.Fatalf("expected alternative-path mention of %s, got:\n%s", trueCons.Action(), narrative)
	}
}
