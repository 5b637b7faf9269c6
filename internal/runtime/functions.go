package runtime

import (
	"github.com/aitzazisstuffed/reasons/internal/rerrors"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// VarArgs is the sentinel MaxArity meaning "unbounded above" (spec §4.2).
const VarArgs = -1

// Callable is the function callable interface from spec §6:
// function(env, args[], n) -> Value. Errors are surfaced via env.SetError
// and a returned Error value, never by panicking.
type Callable func(env *Env, args []value.Value, n int) value.Value

// FunctionRecord describes one registered function.
type FunctionRecord struct {
	Name        string
	Fn          Callable
	Description string
	MinArity    int
	MaxArity    int // VarArgs means unbounded
}

// RegisterFunction inserts or replaces the function named name.
func (e *Env) RegisterFunction(name string, fn Callable, description string, minArity, maxArity int) {
	e.functions[name] = &FunctionRecord{
		Name:        name,
		Fn:          fn,
		Description: description,
		MinArity:    minArity,
		MaxArity:    maxArity,
	}
}

// LookupFunction returns the registered record for name, or nil.
func (e *Env) LookupFunction(name string) *FunctionRecord {
	return e.functions[name]
}

func arityOK(rec *FunctionRecord, n int) bool {
	if n < rec.MinArity {
		return false
	}
	if rec.MaxArity != VarArgs && n > rec.MaxArity {
		return false
	}
	return true
}

// CallFunction validates arity, pushes name onto the call stack, invokes
// the callable (a registered function or, failing that, a built-in), pops
// the stack, and updates statistics. Exceeding max_recursion_depth on the
// call stack sets a recursion error and returns Null without invoking
// anything.
func (e *Env) CallFunction(name string, args []value.Value) value.Value {
	n := len(args)

	rec := e.functions[name]
	if rec == nil {
		rec = builtinRecord(name)
	}
	if rec == nil {
		e.SetError(rerrors.ErrUndefinedFunction(name))
		return value.Null
	}
	if !arityOK(rec, n) {
		e.SetError(rerrors.ErrArity(name, rec.MinArity, rec.MaxArity, n))
		return value.Null
	}

	if uint32(len(e.callStack)) >= e.config.MaxRecursionDepth {
		e.SetError(rerrors.ErrRecursionDepth(int(e.config.MaxRecursionDepth)))
		return value.Null
	}

	e.callStack = append(e.callStack, name)
	if depth := len(e.callStack); depth > e.stats.MaxRecursionDepth {
		e.stats.MaxRecursionDepth = depth
	}
	e.stats.CurrentRecursionDepth = len(e.callStack)

	result := rec.Fn(e, args, n)

	e.callStack = e.callStack[:len(e.callStack)-1]
	e.stats.CurrentRecursionDepth = len(e.callStack)
	e.stats.FunctionsCalled++

	return result
}
