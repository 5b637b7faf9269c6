// Package eval implements the tree-walking evaluator (spec §4.4 C5): the
// single public entry point EvalTree, recursive per-kind dispatch, the
// recursion guard, and the Idle/Running/Bounded/Failed state machine. It
// is the only component that drives the runtime environment, tracer, and
// explainer together during one walk.
package eval
