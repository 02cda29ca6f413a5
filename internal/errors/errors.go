package errors

import (
	stderrors "errors"
	"fmt"
)

// Impossible reports an action that cannot be performed in the current state.
// It aborts only the attempted action; the turn does not advance.
type Impossible struct {
	Code   Code           // Machine-readable reason, also the message key
	Params map[string]any // Values for the message template
}

// Error implements the error interface.
func (e *Impossible) Error() string {
	if len(e.Params) == 0 {
		return "impossible: " + string(e.Code)
	}
	return fmt.Sprintf("impossible: %s %v", e.Code, e.Params)
}

// Is reports whether target matches this error by code.
func (e *Impossible) Is(target error) bool {
	if t, ok := target.(*Impossible); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an Impossible error with optional template parameters.
func New(code Code, params map[string]any) *Impossible {
	return &Impossible{Code: code, Params: params}
}

// Simple creates an Impossible error without parameters.
func Simple(code Code) *Impossible {
	return &Impossible{Code: code}
}

// AsImpossible extracts an Impossible from an error chain.
func AsImpossible(err error) (*Impossible, bool) {
	var imp *Impossible
	if stderrors.As(err, &imp) {
		return imp, true
	}
	return nil, false
}

// IsImpossible reports whether err is, or wraps, an Impossible error.
func IsImpossible(err error) bool {
	_, ok := AsImpossible(err)
	return ok
}

// HasCode reports whether err is an Impossible error with the given code.
func HasCode(err error, code Code) bool {
	return stderrors.Is(err, Simple(code))
}
