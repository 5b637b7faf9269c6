package runtime

import (
	"github.com/aitzazisstuffed/reasons/pkg/ast"
	"github.com/aitzazisstuffed/reasons/pkg/value"
)

// ConsequenceResult is the reply contract from spec §6: handled=false
// invites the next handler; handled=true stops dispatch.
type ConsequenceResult struct {
	Handled    bool
	Success    bool
	HasValue   bool
	Value      value.Value
	HasMessage bool
	Message    string
}

// ConsequenceHandler is the handler interface from spec §6.
type ConsequenceHandler func(env *Env, actionNode *ast.Node) ConsequenceResult

type handlerRecord struct {
	kind    ast.ConsequenceKind
	handler ConsequenceHandler
	name    string
}

// RegisterConsequenceHandler appends handler to the ordered dispatch list.
// kind being ast.ConsequenceAny matches any consequence kind (spec §4.2).
func (e *Env) RegisterConsequenceHandler(kind ast.ConsequenceKind, handler ConsequenceHandler, name string) {
	e.handlers = append(e.handlers, handlerRecord{kind: kind, handler: handler, name: name})
}

// ExecuteConsequence iterates registered handlers in insertion order,
// invoking the first whose kind equals the requested kind or is Any. If no
// handler reports handled=true, the final non-nil result encountered (or a
// zero-value unhandled result) is returned. Statistics for consequences
// and success/failure are updated according to the result that was
// ultimately used.
func (e *Env) ExecuteConsequence(actionNode *ast.Node, kind ast.ConsequenceKind) ConsequenceResult {
	e.stats.ConsequencesExecuted++

	var result ConsequenceResult
	for _, rec := range e.handlers {
		if rec.kind != ast.ConsequenceAny && rec.kind != kind {
			continue
		}
		result = rec.handler(e, actionNode)
		if result.Handled {
			break
		}
	}

	if result.Success {
		e.stats.ConsequencesSucceeded++
	} else {
		e.stats.ConsequencesFailed++
	}
	return result
}
