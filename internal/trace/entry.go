package trace

import (
	"time"

	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// Entry is one append-only log record (spec §3 C4).
type Entry struct {
	Kind      Kind
	Depth     int
	Timestamp time.Time
	ElapsedNS int64
	Node      *ast.Node
	Message   string
	HasValue  bool
	Value     value.Value
}

// nodeName renders a node identity for call-stack and decision-path
// synthesis: Rule/Identifier use their name, Consequence its action,
// everything else its Kind.
func nodeName(n *ast.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind() {
	case ast.KindRule:
		return n.Name()
	case ast.KindIdentifier:
		return n.Name()
	case ast.KindConsequence:
		return n.Action()
	default:
		return n.Kind().String()
	}
}
