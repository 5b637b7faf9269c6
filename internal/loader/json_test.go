package loader_test

import (
	"testing"

	"github.com/aitzazisstuffed/reasons/internal/loader"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

func TestFromJSONBuildsDecisionTree(t *testing.T) {
	doc := []byte(`{
		"kind": "Decision",
		"condition": {"kind": "Literal", "value": {"type": "bool", "value": true}},
		"true_branch": {"kind": "Consequence", "action": "grant", "consequence_kind": "Update", "weight": 1},
		"false_branch": {"kind": "Consequence", "action": "deny", "consequence_kind": "Update", "weight": 1}
	}`)

	node, err := loader.FromJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind() != ast.KindDecision {
		t.Fatalf("Kind() = %v, want Decision", node.Kind())
	}
	if node.TrueBranch().Action() != "grant" {
		t.Fatalf("true branch action = %q, want grant", node.TrueBranch().Action())
	}
	if err := ast.Validate(node); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestFromJSONRejectsUnknownKind(t *testing.T) {
	_, err := loader.FromJSON([]byte(`{"kind": "Bogus"}`))
	if err == nil {
		t.Fatal("expected error for unknown node kind")
	}
}

func TestFromJSONChainAndLogicOp(t *testing.T) {
	doc := []byte(`{
		"kind": "Chain",
		"chain_kind": "Sequential",
		"first": {"kind": "Identifier", "name": "a"},
		"second": {
			"kind": "LogicOp", "op": "Not",
			"left": {"kind": "Identifier", "name": "b"}
		}
	}`)
	node, err := loader.FromJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind() != ast.KindChain {
		t.Fatalf("Kind() = %v, want Chain", node.Kind())
	}
	if node.Second().LogicOp() != ast.LogicNot {
		t.Fatalf("second.LogicOp() = %v, want Not", node.Second().LogicOp())
	}
}
