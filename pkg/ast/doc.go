// Package ast defines the Reasons abstract syntax tree: a closed,
// discriminated-union node type (Node), its constructors, and the
// traversal/mutation/validation operations the evaluator and explainer
// depend on.
//
// Nodes own their children; a child keeps only a weak, non-owning pointer
// back to its parent. Go's
// garbage collector reclaims a detached subtree on its own, so there is no
// explicit Destroy — the source's recursive free is obviated by the host
// language, not reproduced.
package ast
