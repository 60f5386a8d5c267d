package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedScope means the input ended inside an open scope.
	ErrUnterminatedScope = errors.New("unterminated conditional scope")
	// ErrMalformedSeparator means an #else or #elif appeared where no open
	// scope could own it, or a scope already had its #else.
	ErrMalformedSeparator = errors.New("malformed conditional separator")
	// ErrUnmatchedCloser means an #endif appeared outside any scope.
	ErrUnmatchedCloser = errors.New("unmatched #endif")
	// ErrPassCapExceeded means the text was still changing when the pass cap
	// was reached. The accompanying Result holds the partial text.
	ErrPassCapExceeded = errors.New("pass cap reached while still resolving")
)

// LineError locates a structural error in the text fed to a pass.
type LineError struct {
	Pass int
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("pass %d, line %d: %v", e.Pass, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
