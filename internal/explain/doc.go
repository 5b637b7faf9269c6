// Package explain implements the post-hoc narrative explanation engine
// (spec §4.5 C6). It builds its narrative purely from a completed trace
// and the AST it walked — never from the runtime environment or
// evaluator that produced the trace — so any Tracer/ast.Node pair, live
// or replayed from an export, can be explained.
package explain
