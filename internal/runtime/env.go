// Package runtime implements the Reasons runtime environment (spec §3/§4.2
// C3): scoped variable bindings, the function registry and built-in
// dispatcher, the consequence-handler registry, typed configuration,
// statistics, and the single-slot last error.
package runtime

import (
	"time"

	"github.com/aitzazisstuffed/reasons/internal/rerrors"
)

// Env is the runtime environment threaded through one evaluation. A caller
// builds an Env, registers functions and consequence handlers, optionally
// pre-populates variables, then hands the Env and an AST root to the
// evaluator (internal/eval). Distinct Env instances share nothing and may
// run concurrently on separate goroutines (spec §5); a single Env must not
// be driven by more than one evaluation at a time.
type Env struct {
	scopes    []scope
	functions map[string]*FunctionRecord
	handlers  []handlerRecord

	config Config
	stats  Stats

	lastError *rerrors.Error

	callStack []string // call_function's recursion guard (spec §4.2)
}

// New creates a runtime environment with one global scope and the given
// configuration.
func New(cfg Config) *Env {
	e := &Env{
		scopes:    []scope{newScope()},
		functions: make(map[string]*FunctionRecord),
	}
	e.config = cfg
	e.stats.StartedAt = now()
	return e
}

// now is indirected so tests can freeze time if ever needed; production
// code always uses the wall clock.
var now = time.Now

// SetOption and GetOption access the typed config slots as a group; the
// evaluator and CLI read/write Config directly via these to keep a single
// source of truth (spec §4.2: "set_option / get_option access the typed
// config slots").
func (e *Env) SetOption(cfg Config) { e.config = cfg }
func (e *Env) GetOption() Config    { return e.config }

// GetStats returns a snapshot of the statistics record.
func (e *Env) GetStats() Stats { return e.stats }

// ResetStats zeroes the counters and resets the start timestamp.
func (e *Env) ResetStats() {
	e.stats = Stats{StartedAt: now()}
}

// recordError increments the error counter; used by components (not just
// SetError) so Stats.Errors reflects every surfaced failure.
func (e *Env) recordError() { e.stats.Errors++ }

// GC is an advisory best-effort pass (spec §4.2, §12): since scopes are a
// strict stack with no other retained graph inside Env, there is nothing
// of Env's own to reclaim — callers that want memory back should drop
// evicted tracer entries via trace.Tracer.Clear, which is what frees
// retained Value payloads in this implementation. GC always reports 0 here
// and increments GCRuns so callers can observe that it ran.
func (e *Env) GC() (freedBytes int64, err error) {
	e.stats.GCRuns++
	return 0, nil
}
