package trace

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

// EntryCount returns the number of entries currently retained (after any
// FIFO eviction).
func (t *Tracer) EntryCount() int { return len(t.entries) }

// Entries returns the retained entries in order. Callers must not mutate
// the returned slice.
func (t *Tracer) Entries() []Entry { return t.entries }

// MaxDepthReached returns the deepest Depth value seen across retained
// entries.
func (t *Tracer) MaxDepthReached() int {
	max := 0
	for _, e := range t.entries {
		if e.Depth > max {
			max = e.Depth
		}
	}
	return max
}

// NodeExecutionCount returns how many times node was entered, via the
// identity side-index (unaffected by FIFO eviction of the entry log
// itself).
func (t *Tracer) NodeExecutionCount(node *ast.Node) int {
	return t.nodeCounts[node]
}

// DecisionPathString renders the sequence of DecisionBranch messages as
// "TRUE → FALSE → TRUE" (spec §4.3).
func (t *Tracer) DecisionPathString() string {
	var parts []string
	for _, e := range t.entries {
		if e.Kind == KindDecisionBranch {
			parts = append(parts, e.Message)
		}
	}
	return strings.Join(parts, " → ")
}

// CallStack synthesizes the call stack (bottom to top) from the recorded
// EnterNode/ExitNode pairs: nodes entered but never exited by the end of
// the retained log. This is what lets post-mortem explanation recover the
// in-progress stack of a trace that ends mid-evaluation after an error
// (spec §7).
func (t *Tracer) CallStack() []string {
	var stack []*ast.Node
	for _, e := range t.entries {
		switch e.Kind {
		case KindEnterNode:
			if e.Node != nil {
				stack = append(stack, e.Node)
			}
		case KindExitNode:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	names := make([]string, len(stack))
	for i, n := range stack {
		names[i] = nodeName(n)
	}
	return names
}

// NodeNames returns the distinct node names that were entered at least
// once, naturally (numeric-aware) sorted — e.g. "rule2" before "rule10" —
// for human-facing summaries where call order is not the point.
func (t *Tracer) NodeNames() []string {
	seen := make(map[string]bool, len(t.nodeCounts))
	names := make([]string, 0, len(t.nodeCounts))
	for n := range t.nodeCounts {
		name := nodeName(n)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}

// TotalElapsedNS returns the elapsed-ns span between the first and last
// retained entry.
func (t *Tracer) TotalElapsedNS() int64 {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[len(t.entries)-1].ElapsedNS - t.entries[0].ElapsedNS
}

// AverageElapsedNS returns TotalElapsedNS divided by the retained entry
// count (0 if empty).
func (t *Tracer) AverageElapsedNS() float64 {
	if len(t.entries) == 0 {
		return 0
	}
	return float64(t.TotalElapsedNS()) / float64(len(t.entries))
}

// EstimatedMemoryFootprint returns a rough byte estimate of the retained
// log: a fixed per-entry overhead plus each message's length.
func (t *Tracer) EstimatedMemoryFootprint() int64 {
	const perEntryOverhead = 64
	total := int64(0)
	for _, e := range t.entries {
		total += perEntryOverhead + int64(len(e.Message))
	}
	return total
}

// Stats is the exportable stats block from spec §6's JSON schema.
type Stats struct {
	NodesEntered          int `json:"nodes_entered"`
	NodesExited           int `json:"nodes_exited"`
	ConditionsEvaluated   int `json:"conditions_evaluated"`
	DecisionsMade         int `json:"decisions_made"`
	ConsequencesSucceeded int `json:"consequences_succeeded"`
	ConsequencesFailed    int `json:"consequences_failed"`
	RulesExecuted         int `json:"rules_executed"`
	VariablesChanged      int `json:"variables_changed"`
	ErrorsOccurred        int `json:"errors_occurred"`
}

// GetStats returns the un-evicted running totals (spec §8: "stats are not
// evicted").
func (t *Tracer) GetStats() Stats {
	c := t.stats
	return Stats{
		NodesEntered:          c.NodesEntered,
		NodesExited:           c.NodesExited,
		ConditionsEvaluated:   c.ConditionsEvaluated,
		DecisionsMade:         c.DecisionsMade,
		ConsequencesSucceeded: c.ConsequencesSucceeded,
		ConsequencesFailed:    c.ConsequencesFailed,
		RulesExecuted:         c.RulesExecuted,
		VariablesChanged:      c.VariablesChanged,
		ErrorsOccurred:        c.ErrorsOccurred,
	}
}
