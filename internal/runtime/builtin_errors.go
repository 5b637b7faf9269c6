package runtime

import "github.com/aitzazisstuffed/reasons/internal/rerrors"

func typeErr(fn string) *rerrors.Error {
	return rerrors.Newf(rerrors.CodeType, "argument type mismatch in %s", fn)
}

func domainErr(message string) *rerrors.Error {
	return rerrors.Newf(rerrors.CodeRuntime, rerrors.ErrMsgDomainError, message)
}

func boundsErr(index, length int) *rerrors.Error {
	return rerrors.Newf(rerrors.CodeBounds, "index %d out of bounds (length %d)", index, length)
}
