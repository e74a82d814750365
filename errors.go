package filterargv

import (
	"errors"
	"fmt"
)

// ErrInvalidAssignments is wrapped by OptionsError when Options.Assignments is not
// one of "all", "none", "noflag"
var ErrInvalidAssignments = errors.New(`assignments must be equal to "all", "none" or "noFlags"`)

// ErrUnknownKind means an argument kind the policy doesn't know about. It indicates a bug
var ErrUnknownKind = errors.New("unknown argument kind")

// OptionsError is returned by Filter before any argument is processed if the options are invalid
type OptionsError struct {
	Field string
	// Value is the raw (not normalized) value
	Value string
	Err   error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf(`invalid %s option "%s": %v`, e.Field, e.Value, e.Err)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}
