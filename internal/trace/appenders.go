package trace

import (
	"fmt"

	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// Begin opens a named section, emitting a BeginSection event at the
// current depth and then increasing depth for everything nested inside.
func (t *Tracer) Begin(section string) {
	t.append(Entry{Kind: KindBeginSection, Message: section})
	t.depth++
}

// End closes the most recently opened section, decreasing depth first so
// the EndSection event lines up with its matching BeginSection.
func (t *Tracer) End() {
	if t.depth > 0 {
		t.depth--
	}
	t.append(Entry{Kind: KindEndSection, Message: "end"})
}

// EnterNode records a node becoming the active evaluation target,
// increments its per-node execution count, pushes it onto the synthesized
// call stack, and increases depth for its children.
func (t *Tracer) EnterNode(node *ast.Node, message string) {
	t.stats.NodesEntered++
	if node != nil {
		t.nodeCounts[node]++
		t.enteredStack = append(t.enteredStack, node)
	}
	t.append(Entry{Kind: KindEnterNode, Node: node, Message: message})
	t.depth++
}

// ExitNode records a node's evaluation completing, decreasing depth and
// popping the synthesized call stack.
func (t *Tracer) ExitNode(node *ast.Node, message string) {
	if t.depth > 0 {
		t.depth--
	}
	t.stats.NodesExited++
	if len(t.enteredStack) > 0 {
		t.enteredStack = t.enteredStack[:len(t.enteredStack)-1]
	}
	t.append(Entry{Kind: KindExitNode, Node: node, Message: message})
}

// Condition records a Decision's condition evaluation result.
func (t *Tracer) Condition(node *ast.Node, v value.Value) {
	t.stats.ConditionsEvaluated++
	t.append(Entry{Kind: KindConditionEval, Node: node, Message: "condition evaluated", HasValue: true, Value: v})
}

// Decision records which branch a Decision took ("TRUE" or "FALSE").
func (t *Tracer) Decision(node *ast.Node, branch string) {
	t.stats.DecisionsMade++
	t.append(Entry{Kind: KindDecisionBranch, Node: node, Message: branch})
}

// Consequence records a consequence's execution outcome.
func (t *Tracer) Consequence(node *ast.Node, success bool, message string) {
	if success {
		t.stats.ConsequencesSucceeded++
	} else {
		t.stats.ConsequencesFailed++
	}
	action := ""
	if node != nil {
		action = node.Action()
	}
	msg := fmt.Sprintf("%s: %s", action, message)
	t.append(Entry{Kind: KindConsequenceExec, Node: node, Message: msg})
}

// RuleExecution records a rule body invocation.
func (t *Tracer) RuleExecution(node *ast.Node) {
	t.stats.RulesExecuted++
	name := ""
	if node != nil {
		name = node.Name()
	}
	t.append(Entry{Kind: KindRuleInvoke, Node: node, Message: name})
}

// VariableChange records a variable assignment.
func (t *Tracer) VariableChange(name string, v value.Value) {
	t.stats.VariablesChanged++
	t.append(Entry{Kind: KindVariableChange, Message: name, HasValue: true, Value: v})
}

// Error records a failure surfaced at node.
func (t *Tracer) Error(node *ast.Node, message string) {
	t.stats.ErrorsOccurred++
	t.append(Entry{Kind: KindError, Node: node, Message: message})
}

// Message appends a free-form CustomMessage entry.
func (t *Tracer) Message(format string, args ...any) {
	t.append(Entry{Kind: KindCustomMessage, Message: fmt.Sprintf(format, args...)})
}

func entryLine(e Entry) string {
	val := ""
	if e.HasValue {
		val = " value=" + e.Value.String()
	}
	node := ""
	if e.Node != nil {
		node = " node=" + nodeName(e.Node)
	}
	return fmt.Sprintf("[%s] depth=%d %s%s%s", e.Kind.Name(), e.Depth, e.Message, node, val)
}
