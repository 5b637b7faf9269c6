package rerrors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aitzazisstuffed/reasons/internal/rerrors"
)

func TestErrorFormatting(t *testing.T) {
	err := rerrors.ErrUndefinedVariable("x").At("tree.json", 12)
	msg := err.Error()
	if !strings.Contains(msg, "Undefined") || !strings.Contains(msg, "x") || !strings.Contains(msg, "tree.json:12") {
		t.Errorf("Error() = %q, missing expected components", msg)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := rerrors.Wrap(rerrors.CodeHandler, cause, "handler failed")
	if !errors.Is(wrapped, cause) {
		t.Errorf("errors.Is(wrapped, cause) = false, want true")
	}
}

func TestArityError(t *testing.T) {
	err := rerrors.ErrArity("sqrt", 1, 1, 2)
	if err.Code != rerrors.CodeArgument {
		t.Errorf("Code = %v, want CodeArgument", err.Code)
	}
}
