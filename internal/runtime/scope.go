package runtime

import "github.com/aitzazisstuffed/reasons/pkg/value"

// scope is one frame of the lexical variable-binding stack.
type scope map[string]value.Value

func newScope() scope { return make(scope) }

// PushScope opens a new innermost scope, enclosed by the current one.
func (e *Env) PushScope() {
	e.scopes = append(e.scopes, newScope())
}

// PopScope closes the innermost scope, releasing every variable it held.
// The global scope (index 0) is never popped — spec §3: "exactly one
// global scope always exists; pop_scope never removes it."
func (e *Env) PopScope() {
	if len(e.scopes) <= 1 {
		return
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// SetVariable copies value into the innermost scope, replacing any prior
// value of the same name in that scope only. VariablesCreated is
// incremented only when the name did not already exist in the innermost
// scope.
func (e *Env) SetVariable(name string, v value.Value) {
	innermost := e.scopes[len(e.scopes)-1]
	if _, exists := innermost[name]; !exists {
		e.stats.VariablesCreated++
	}
	innermost[name] = v
}

// GetVariable searches innermost-to-outermost and returns the first hit.
// On a miss it returns Null and records an undefined-variable error in the
// last-error slot.
func (e *Env) GetVariable(name string) value.Value {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i][name]; ok {
			return v
		}
	}
	e.SetError(errUndefinedVariable(name))
	return value.Null
}

// VariableExists is the boolean form of GetVariable without the
// last-error side effect.
func (e *Env) VariableExists(name string) bool {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i][name]; ok {
			return true
		}
	}
	return false
}

// ScopeDepth reports how many scopes (including global) are on the stack.
func (e *Env) ScopeDepth() int { return len(e.scopes) }
