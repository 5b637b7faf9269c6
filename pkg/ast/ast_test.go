package ast_test

import (
	"testing"

	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

func lit(v value.Value) *ast.Node {
	n, err := ast.NewLiteral(v, ast.Position{Line: 1, Column: 1})
	if err != nil {
		panic(err)
	}
	return n
}

func TestCloneEqualsRoundTrip(t *testing.T) {
	cond, _ := ast.NewComparison(ast.CmpGt, mustIdent("x"), lit(value.Number(5)), ast.Position{})
	win, _ := ast.NewConsequence("win", ast.ConsequenceAny, 1, ast.Position{})
	lose, _ := ast.NewConsequence("lose", ast.ConsequenceAny, 1, ast.Position{})
	decision, err := ast.NewDecision(cond, win, lose, ast.ConditionThreshold, 0, ast.Position{})
	if err != nil {
		t.Fatalf("NewDecision: %v", err)
	}

	clone := ast.Clone(decision)
	if !ast.Equal(decision, clone) {
		t.Errorf("clone is not Equal to original")
	}
	if ast.CountNodes(clone) != ast.CountNodes(decision) {
		t.Errorf("CountNodes(clone) = %d, want %d", ast.CountNodes(clone), ast.CountNodes(decision))
	}

	// Mutating the clone's execution state must not affect the original.
	clone.TrueBranch().SetExecuted(true)
	if decision.TrueBranch().Executed() {
		t.Errorf("mutating clone affected original")
	}
}

func mustIdent(name string) *ast.Node {
	n, err := ast.NewIdentifier(name, ast.Position{})
	if err != nil {
		panic(err)
	}
	return n
}

func TestValidateParentPointers(t *testing.T) {
	left := lit(value.Number(1))
	right := lit(value.Number(2))
	cmp, _ := ast.NewComparison(ast.CmpEq, left, right, ast.Position{})

	if err := ast.Validate(cmp); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if left.Parent() != cmp {
		t.Errorf("left.Parent() != cmp")
	}
}

func TestConstructorsRejectEmptyStrings(t *testing.T) {
	// Bypass constructors is not possible (fields are private); verify the
	// constructor itself refuses the invalid input.
	if _, err := ast.NewIdentifier("", ast.Position{}); err == nil {
		t.Errorf("NewIdentifier(\"\") should fail")
	}
	if _, err := ast.NewConsequence("", ast.ConsequenceAny, 1, ast.Position{}); err == nil {
		t.Errorf("NewConsequence(\"\") should fail")
	}
}

func TestDepthLimit(t *testing.T) {
	// Build a deeply right-nested chain exceeding MaxTreeDepth and verify
	// Validate rejects it.
	var n *ast.Node = lit(value.Bool(true))
	for i := 0; i < ast.MaxTreeDepth+1; i++ {
		var err error
		n, err = ast.NewChain(lit(value.Bool(true)), n, ast.ChainSequential, ast.Position{})
		if err != nil {
			t.Fatalf("NewChain: %v", err)
		}
	}
	if err := ast.Validate(n); err == nil {
		t.Errorf("Validate should reject a tree deeper than MaxTreeDepth")
	}
}

func TestOptimizeForGolfCollapsesTrueCondition(t *testing.T) {
	winConsequence, _ := ast.NewConsequence("win", ast.ConsequenceAny, 1, ast.Position{})
	loseConsequence, _ := ast.NewConsequence("lose", ast.ConsequenceAny, 1, ast.Position{})
	decision, _ := ast.NewDecision(lit(value.Bool(true)), winConsequence, loseConsequence, ast.ConditionDefault, 0, ast.Position{})

	optimized := ast.OptimizeForGolf(decision)
	if optimized.Kind() != ast.KindConsequence {
		t.Fatalf("optimized kind = %v, want Consequence", optimized.Kind())
	}
	if optimized.Action() != "win" {
		t.Errorf("optimized action = %q, want %q", optimized.Action(), "win")
	}
}

func TestOptimizeForGolfShortCircuitsAnd(t *testing.T) {
	and, _ := ast.NewLogicOp(ast.LogicAnd, lit(value.Bool(false)), mustIdent("unused"), ast.Position{})
	optimized := ast.OptimizeForGolf(and)
	if optimized.Kind() != ast.KindLiteral || optimized.Literal().Truthy() {
		t.Errorf("And(false, X) should fold to Literal(false), got %v", optimized)
	}
}

func TestOptimizeForGolfShortCircuitsOr(t *testing.T) {
	or, _ := ast.NewLogicOp(ast.LogicOr, lit(value.Bool(true)), mustIdent("unused"), ast.Position{})
	optimized := ast.OptimizeForGolf(or)
	if optimized.Kind() != ast.KindLiteral || !optimized.Literal().Truthy() {
		t.Errorf("Or(true, X) should fold to Literal(true), got %v", optimized)
	}
}

func TestFindPreorder(t *testing.T) {
	a := mustIdent("a")
	b := mustIdent("b")
	prog, _ := ast.NewProgram([]*ast.Node{a, b}, ast.Position{})

	found := ast.Find(prog, func(n *ast.Node) bool {
		return n.Kind() == ast.KindIdentifier && n.Name() == "b"
	})
	if found != b {
		t.Errorf("Find did not locate node b")
	}
}
