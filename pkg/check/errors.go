package check

import (
	"errors"
	"fmt"
)

var errInvalidBytes = errors.New("invalid byte sequence")

// DecodeError reports file content that is not valid text in the
// configured charset. The engine turns it into violation outcomes
// rather than aborting the run.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode as %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ResolutionError reports a failure while expanding the file set,
// e.g. an unreadable directory or a missing explicit path.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %s: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// MutationError reports a failure while rewriting a file in place.
// The original file is left untouched when this error is returned.
type MutationError struct {
	Path string
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutating %s: %v", e.Path, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
