package eval

import (
	"github.com/aitzazisstuffed/reasons/internal/explain"
	"github.com/aitzazisstuffed/reasons/internal/rerrors"
	"github.com/aitzazisstuffed/reasons/internal/runtime"
	"github.com/aitzazisstuffed/reasons/internal/trace"
	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// Evaluator drives one runtime environment, tracer, and explainer through
// repeated tree walks. A single Evaluator must not be used concurrently
// from more than one goroutine (spec §5: one Env is an indivisible unit).
type Evaluator struct {
	env       *runtime.Env
	tracer    *trace.Tracer
	explainer *explain.Explainer

	ExplainMode  explain.Mode
	ExplainFocus *ast.Node

	depth int
	state State

	onCallStack     map[*ast.Node]bool
	lastExplanation string
}

// New builds an evaluator bound to env and tracer. explainer may be nil if
// explanations are never enabled on env's config.
func New(env *runtime.Env, tr *trace.Tracer, explainer *explain.Explainer) *Evaluator {
	return &Evaluator{
		env:         env,
		tracer:      tr,
		explainer:   explainer,
		ExplainMode: explain.ModeFull,
		state:       StateIdle,
		onCallStack: make(map[*ast.Node]bool),
	}
}

// State reports the evaluator's current lifecycle state.
func (ev *Evaluator) State() State { return ev.state }

// LastExplanation returns the narrative text produced by the most recent
// EvalTree call, or "" if explanations were disabled or never run.
func (ev *Evaluator) LastExplanation() string { return ev.lastExplanation }

// EvalTree is the evaluator's public contract (spec §4.4): reset
// recursion depth, local stats, trace, and explainer; wrap the walk in a
// single Main Evaluation section; afterwards, if explanations are
// enabled, invoke the explainer. The evaluator always returns to Idle
// before this call returns, so repeated calls on the same Evaluator start
// clean.
func (ev *Evaluator) EvalTree(root *ast.Node) value.Value {
	ev.reset()
	ev.state = StateRunning

	cfg := ev.env.GetOption()
	tracing := cfg.TracingEnabled && ev.tracer != nil

	if tracing {
		ev.tracer.Begin("Main Evaluation")
	}

	result := ev.eval(root)

	if tracing {
		ev.tracer.End()
	}

	if cfg.ExplanationsEnabled && ev.explainer != nil && ev.tracer != nil {
		ev.explainer.SetMode(ev.ExplainMode)
		ev.explainer.SetFocus(ev.ExplainFocus)
		ev.lastExplanation = ev.explainer.Generate(root, ev.tracer)
	}

	ev.state = StateIdle
	return result
}

func (ev *Evaluator) reset() {
	ev.depth = 0
	ev.state = StateIdle
	ev.onCallStack = make(map[*ast.Node]bool)
	if ev.tracer != nil {
		ev.tracer.Clear()
	}
	ev.lastExplanation = ""
}

func (ev *Evaluator) maxDepth() uint32 {
	return ev.env.GetOption().MaxRecursionDepth
}

// enter increments the recursion depth, failing with a Bounded transition
// if the cap would be exceeded. Every successful enter must be matched by
// a leave on every return path.
func (ev *Evaluator) enter() bool {
	ev.depth++
	if uint32(ev.depth) > ev.maxDepth() {
		ev.state = StateBounded
		ev.env.SetError(rerrors.ErrRecursionDepth(int(ev.maxDepth())))
		return false
	}
	return true
}

func (ev *Evaluator) leave() {
	if ev.depth > 0 {
		ev.depth--
	}
	if ev.state == StateBounded || ev.state == StateFailed {
		return
	}
	ev.state = StateRunning
}

func (ev *Evaluator) fail() {
	ev.state = StateFailed
}

func (ev *Evaluator) tracing() bool {
	return ev.tracer != nil && ev.env.GetOption().TracingEnabled
}
