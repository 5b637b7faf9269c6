package trace

import (
	"io"
	"time"

	"github.com/aitzazisstuffed/reasons/pkg/ast"
)

// DefaultMaxEntries bounds the tracer before FIFO eviction begins.
const DefaultMaxEntries = 10000

// GolfMaxEntries is the reduced cap golf mode applies (spec §9: golf mode
// "reduces the cap").
const GolfMaxEntries = 500

// counters tallies every append, independent of FIFO eviction, so the
// exported stats block always reflects the true totals (spec §8: "stats
// are not evicted").
type counters struct {
	NodesEntered          int
	NodesExited           int
	ConditionsEvaluated   int
	DecisionsMade         int
	ConsequencesSucceeded int
	ConsequencesFailed    int
	RulesExecuted         int
	VariablesChanged      int
	ErrorsOccurred        int
}

// Tracer is the ordered, bounded execution log.
type Tracer struct {
	entries []Entry

	enabled    bool
	detailed   bool
	timestamps bool
	maxEntries int
	golfMode   bool
	sink       io.Writer

	startedAt time.Time
	depth     int
	cursor    int

	nodeCounts   map[*ast.Node]int
	enteredStack []*ast.Node

	stats counters
}

// New creates an enabled tracer with detail, timestamps, and the default
// capacity on.
func New() *Tracer {
	t := &Tracer{
		enabled:    true,
		detailed:   true,
		timestamps: true,
		maxEntries: DefaultMaxEntries,
		nodeCounts: make(map[*ast.Node]int),
	}
	t.startedAt = time.Now()
	return t
}

// Clear removes all entries and resets side indexes and counters, without
// touching configuration (enabled/detailed/timestamps/maxEntries/sink).
func (t *Tracer) Clear() {
	t.entries = nil
	t.nodeCounts = make(map[*ast.Node]int)
	t.enteredStack = nil
	t.cursor = 0
	t.depth = 0
	t.stats = counters{}
	t.startedAt = time.Now()
}

// Destroy releases the tracer's retained state. Go's GC reclaims the
// memory on its own; Destroy exists so callers following the spec's
// create/destroy lifecycle have a symmetrical call.
func (t *Tracer) Destroy() { t.Clear() }

// SetEnabled toggles whether appenders add entries to the log. While
// disabled, appenders still update the running counters, the per-node
// execution counts, the synthesized call stack, and the depth.
func (t *Tracer) SetEnabled(v bool) { t.enabled = v }

// Enabled reports whether the tracer currently records events.
func (t *Tracer) Enabled() bool { return t.enabled }

// SetDetailed toggles whether entries keep their Value payloads; when
// off, every appended entry is recorded without one.
func (t *Tracer) SetDetailed(v bool) { t.detailed = v }

// SetTimestamps toggles whether wall-clock timestamps are stamped.
func (t *Tracer) SetTimestamps(v bool) { t.timestamps = v }

// SetMaxEntries sets the FIFO eviction threshold. A value <= 0 means
// unbounded.
func (t *Tracer) SetMaxEntries(n int) { t.maxEntries = n }

// SetSink configures an io.Writer that every appended entry is also
// written to immediately, as a single plain-text line in the format
// DumpPretty uses, matching spec §4.3's "output-file-sink".
func (t *Tracer) SetSink(w io.Writer) { t.sink = w }

// SetGolfMode applies golf mode's coordinated tracer effects (spec §9):
// disables detail and timestamps and reduces the capacity to
// GolfMaxEntries (only if the current cap is larger).
func (t *Tracer) SetGolfMode(v bool) {
	t.golfMode = v
	if v {
		t.detailed = false
		t.timestamps = false
		if t.maxEntries <= 0 || t.maxEntries > GolfMaxEntries {
			t.maxEntries = GolfMaxEntries
		}
	}
}

// elapsed returns the monotonic nanoseconds since the tracer was created
// or last cleared.
func (t *Tracer) elapsed() int64 {
	return time.Since(t.startedAt).Nanoseconds()
}

func (t *Tracer) append(e Entry) {
	if !t.enabled {
		return
	}
	e.Depth = t.depth
	e.ElapsedNS = t.elapsed()
	if t.timestamps {
		e.Timestamp = time.Now()
	}
	if !t.detailed {
		e.HasValue = false
	}

	t.entries = append(t.entries, e)
	if t.maxEntries > 0 && len(t.entries) > t.maxEntries {
		t.entries = t.entries[1:]
		if t.cursor > 0 {
			t.cursor--
		}
	}

	if t.sink != nil {
		_, _ = t.sink.Write([]byte(entryLine(e) + "\n"))
	}
}
