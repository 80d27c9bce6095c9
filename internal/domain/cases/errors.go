package cases

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("case not found")
	// ErrIllegalTransition covers stale advances (double submit), mutation of
	// terminal cases, and any request that would move a step backwards.
	ErrIllegalTransition = errors.New("illegal workflow transition")
)

// ValidationError carries the set of step fields that blocked an
// advance/finish. The caller re-prompts; nothing was mutated.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	sort.Strings(fields)
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
