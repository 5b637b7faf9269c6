package explain

import (
	"fmt"
	"strings"

	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

// writeAlternatives enumerates every decision on the walked path whose
// condition was false and reports the consequence reachable had it been
// true (spec §4.5: "alternative-path synthesis").
func (ex *Explainer) writeAlternatives(b *strings.Builder, root *ast.Node, tr *trace.Tracer, counts map[string]int) {
	var lines []string
	seen := make(map[*ast.Node]bool)

	for _, e := range tr.Entries() {
		if e.Kind != trace.KindDecisionBranch || e.Message != "FALSE" {
			continue
		}
		decision := e.Node
		if decision == nil || seen[decision] {
			continue
		}
		seen[decision] = true

		reachable := ast.Find(decision.TrueBranch(), func(n *ast.Node) bool {
			return n.Kind() == ast.KindConsequence
		})
		if reachable == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("had %s been true, %s would have fired", nodeLabel(decision), nodeLabel(reachable)))
	}

	writeSection(b, "alternative paths", lines)
	counts["alternatives"] = len(lines)
}
