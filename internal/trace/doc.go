// Package trace implements the Reasons execution tracer (spec §4.3 C4):
// an append-only, depth-annotated, FIFO-bounded log of every observable
// evaluator event, with query, filter, comparison, and export surfaces.
package trace
