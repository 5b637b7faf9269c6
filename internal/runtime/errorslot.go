package runtime

import "github.com/aitzazisstuffed/reasons/internal/rerrors"

// SetError stores err in the single-slot last-error and increments the
// error statistic. A nil err clears the slot without affecting the
// statistic.
func (e *Env) SetError(err *rerrors.Error) {
	e.lastError = err
	if err != nil {
		e.recordError()
	}
}

// LastError returns the current contents of the error slot, or nil if
// clear.
func (e *Env) LastError() *rerrors.Error { return e.lastError }

// ErrorMessage returns the message of the last error, or "" if clear.
func (e *Env) ErrorMessage() string {
	if e.lastError == nil {
		return ""
	}
	return e.lastError.Message
}

// HadError reports whether the error slot is currently set.
func (e *Env) HadError() bool { return e.lastError != nil }

// ClearError empties the error slot without touching statistics.
func (e *Env) ClearError() { e.lastError = nil }

func errUndefinedVariable(name string) *rerrors.Error {
	return rerrors.ErrUndefinedVariable(name)
}
