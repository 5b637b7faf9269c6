package explain

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

var titleCaser = cases.Title(language.Und)

// Explainer turns a Tracer's recorded events, read alongside the AST they
// walked, into a narrative text buffer. It carries no reference to the
// runtime environment or evaluator that produced the trace.
type Explainer struct {
	mode  Mode
	focus *ast.Node

	visited map[*ast.Node]bool
}

// New creates an Explainer defaulting to ModeFull with no focus node.
func New() *Explainer {
	return &Explainer{mode: ModeFull}
}

// SetMode selects which sections Generate will emit.
func (ex *Explainer) SetMode(m Mode) { ex.mode = m }

// SetFocus sets the node the why-not section explains (WhyNot and Full
// modes). The other sections are not narrowed by it: they always narrate
// the whole walk. A nil focus omits the why-not section.
func (ex *Explainer) SetFocus(focus *ast.Node) { ex.focus = focus }

func heading(title string) string {
	return titleCaser.String(title)
}

// Generate resets internal state, walks tr in order, and returns the
// narrative text. Section order: decision path, key condition
// evaluations, consequence executions, rule activations, why not and
// alternative paths (WhyNot/Full only), errors, summary.
func (ex *Explainer) Generate(root *ast.Node, tr *trace.Tracer) string {
	ex.visited = make(map[*ast.Node]bool)

	var b strings.Builder
	counts := map[string]int{}

	ex.writeDecisionPath(&b, tr, counts)
	ex.writeConditionEvals(&b, tr, counts)
	ex.writeConsequenceExecs(&b, tr, counts)
	ex.writeRuleActivations(&b, tr, counts)

	if ex.mode == ModeWhyNot || ex.mode == ModeFull {
		ex.writeWhyNot(&b, root, tr, counts)
		ex.writeAlternatives(&b, root, tr, counts)
	}

	ex.writeErrors(&b, tr, counts)
	ex.writeSummary(&b, counts)

	return b.String()
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "== %s ==\n", heading(title))
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteByte('\n')
}

// ExportFile writes the narrative text to path as a plain-text sink
// (spec §4.5: "Export: plain-text file sink").
func ExportFile(path, narrative string) error {
	return os.WriteFile(path, []byte(narrative), 0o644)
}
