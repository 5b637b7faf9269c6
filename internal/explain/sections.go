package explain

import (
	"fmt"
	"strings"

	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

func (ex *Explainer) writeDecisionPath(b *strings.Builder, tr *trace.Tracer, counts map[string]int) {
	path := tr.DecisionPathString()
	if path == "" {
		return
	}
	fmt.Fprintf(b, "== %s ==\n- %s\n\n", heading("decision path"), path)
	counts["decision path"] = 1
}

func (ex *Explainer) writeConditionEvals(b *strings.Builder, tr *trace.Tracer, counts map[string]int) {
	var lines []string
	for _, e := range tr.Entries() {
		if e.Kind != trace.KindConditionEval {
			continue
		}
		if ex.visited[e.Node] {
			continue
		}
		ex.visited[e.Node] = true
		val := ""
		if e.HasValue {
			val = " = " + e.Value.String()
		}
		lines = append(lines, fmt.Sprintf("%s%s", nodeLabel(e.Node), val))
	}
	writeSection(b, "key condition evaluations", lines)
	counts["conditions"] = len(lines)
}

func (ex *Explainer) writeConsequenceExecs(b *strings.Builder, tr *trace.Tracer, counts map[string]int) {
	var lines []string
	for _, e := range tr.Entries() {
		if e.Kind != trace.KindConsequenceExec {
			continue
		}
		lines = append(lines, e.Message)
	}
	writeSection(b, "consequence executions", lines)
	counts["consequences"] = len(lines)
}

func (ex *Explainer) writeRuleActivations(b *strings.Builder, tr *trace.Tracer, counts map[string]int) {
	var lines []string
	for _, e := range tr.Entries() {
		if e.Kind != trace.KindRuleInvoke {
			continue
		}
		if ex.visited[e.Node] {
			continue
		}
		ex.visited[e.Node] = true
		lines = append(lines, e.Message)
	}
	writeSection(b, "rule activations", lines)
	counts["rules"] = len(lines)
}

func (ex *Explainer) writeErrors(b *strings.Builder, tr *trace.Tracer, counts map[string]int) {
	var lines []string
	for _, e := range tr.Entries() {
		if e.Kind != trace.KindError {
			continue
		}
		lines = append(lines, e.Message)
	}
	writeSection(b, "errors", lines)
	counts["errors"] = len(lines)
}

func (ex *Explainer) writeSummary(b *strings.Builder, counts map[string]int) {
	fmt.Fprintf(b, "== %s ==\n", heading("summary"))
	for _, key := range []string{"decision path", "conditions", "consequences", "rules", "why not", "alternatives", "errors"} {
		if n, ok := counts[key]; ok {
			fmt.Fprintf(b, "- %s: %d\n", key, n)
		}
	}
}

// nodeLabel renders a node identity for narrative prose: Rule/Identifier
// use their name, Consequence its action, everything else its Kind.
func nodeLabel(n *ast.Node) string {
	if n == nil {
		return "<root>"
	}
	switch n.Kind() {
	case ast.KindRule, ast.KindIdentifier:
		return n.Name()
	case ast.KindConsequence:
		return n.Action()
	default:
		return n.Kind().String()
	}
}
