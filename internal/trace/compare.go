package trace

import "github.com/aitzazisstuffed/reasons/pkg/value"

// Compare reports structural equality over ordered events: same length,
// and each pair of entries agreeing on Kind, Depth, Message, node identity
// (kind + name, not pointer — two traces from different AST instances with
// the same shape still compare equal), and Value payload. Wall-clock
// Timestamp and monotonic ElapsedNS are excluded, since they are never
// reproducible across runs.
func Compare(a, b *Tracer) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		ea, eb := a.entries[i], b.entries[i]
		if ea.Kind != eb.Kind || ea.Depth != eb.Depth || ea.Message != eb.Message {
			return false
		}
		if (ea.Node == nil) != (eb.Node == nil) || nodeName(ea.Node) != nodeName(eb.Node) {
			return false
		}
		if ea.Node != nil && ea.Node.Kind() != eb.Node.Kind() {
			return false
		}
		if ea.HasValue != eb.HasValue {
			return false
		}
		if ea.HasValue && !value.Equal(ea.Value, eb.Value) {
			return false
		}
	}
	return true
}
