// Package loader implements the JSON AST-producer adapter used by the CLI
// (spec §6: "the core accepts any tree whose nodes satisfy the data
// model's invariants; parsers target this shape"). It is not part of the
// evaluation core — it exists only to turn an externally authored tree
// description into the pkg/ast shape the evaluator accepts.
package loader
