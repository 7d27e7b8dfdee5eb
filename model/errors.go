package model

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyCollision is returned when a merge finds a key already
	// present in the target mapping. Two submodels claiming the same
	// state variable or condition is always a caller bug.
	ErrKeyCollision = errors.New("model: key already merged")

	// ErrIllPosed is returned by CheckWellPosed when the accumulated
	// equations are inconsistent.
	ErrIllPosed = errors.New("model: ill-posed")

	// ErrVariableNotFound is returned when a named reporting variable
	// has not been populated.
	ErrVariableNotFound = errors.New("model: variable not found")

	// ErrBadKey is returned when an equation key is not a state
	// variable or a concatenation of state variables.
	ErrBadKey = errors.New("model: equation key is not a state variable")
)

// MergeError identifies the field and key that collided during Update.
// The merge is atomic: a MergeError means the target was left untouched.
type MergeError struct {
	Field Field
	Key   string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("model: key %q already present in %s", e.Key, e.Field)
}

func (e *MergeError) Unwrap() error { return ErrKeyCollision }
