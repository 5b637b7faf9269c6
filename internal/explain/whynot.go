package explain

import (
	"fmt"
	"strings"

	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

// actualBranch returns the branch the trace recorded for decision, or ""
// if decision was never entered.
func actualBranch(tr *trace.Tracer, decision *ast.Node) string {
	for _, e := range tr.Entries() {
		if e.Kind == trace.KindDecisionBranch && e.Node == decision {
			return e.Message
		}
	}
	return ""
}

// nearestDecisionAncestor walks focus's parent chain and returns the
// closest Decision ancestor along with the branch ("TRUE"/"FALSE") that
// would have to be taken to reach focus.
func nearestDecisionAncestor(focus *ast.Node) (*ast.Node, string) {
	child := focus
	for p := focus.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == ast.KindDecision {
			if p.TrueBranch() == child {
				return p, "TRUE"
			}
			if p.FalseBranch() == child {
				return p, "FALSE"
			}
		}
		child = p
	}
	return nil, ""
}

// writeWhyNot locates the closest preceding decision that forced the
// focus node not to execute (spec §4.5: "took X branch instead of
// required Y").
func (ex *Explainer) writeWhyNot(b *strings.Builder, root *ast.Node, tr *trace.Tracer, counts map[string]int) {
	if ex.focus == nil {
		return
	}

	decision, required := nearestDecisionAncestor(ex.focus)
	if decision == nil {
		return
	}
	actual := actualBranch(tr, decision)
	if actual == "" || actual == required {
		return
	}

	line := fmt.Sprintf("%s: took %s branch instead of required %s branch", nodeLabel(decision), actual, required)
	writeSection(b, "why not", []string{line})
	counts["why not"] = 1
}
