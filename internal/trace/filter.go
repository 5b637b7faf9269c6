package trace

import "github.com/tidwall/match"

// FilterByType returns a new, independent Tracer containing only entries
// whose Kind name matches pattern (a gjson/sjson-style glob, e.g. "*NODE"
// matches both ENTER_NODE and EXIT_NODE). The returned tracer shares no
// backing storage with t.
func (t *Tracer) FilterByType(pattern string) *Tracer {
	out := New()
	out.enabled = t.enabled
	out.detailed = t.detailed
	out.timestamps = t.timestamps
	out.maxEntries = t.maxEntries

	for _, e := range t.entries {
		if match.Match(e.Kind.Name(), pattern) {
			out.entries = append(out.entries, e)
			if e.Node != nil {
				out.nodeCounts[e.Node] = t.nodeCounts[e.Node]
			}
		}
	}
	return out
}

// FilterByDepth returns a new, independent Tracer containing only entries
// whose Depth falls within [min, max] inclusive.
func (t *Tracer) FilterByDepth(min, max int) *Tracer {
	out := New()
	out.enabled = t.enabled
	out.detailed = t.detailed
	out.timestamps = t.timestamps
	out.maxEntries = t.maxEntries

	for _, e := range t.entries {
		if e.Depth >= min && e.Depth <= max {
			out.entries = append(out.entries, e)
			if e.Node != nil {
				out.nodeCounts[e.Node] = t.nodeCounts[e.Node]
			}
		}
	}
	return out
}
