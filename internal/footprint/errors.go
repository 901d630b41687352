package footprint

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownItem is matched by UnknownItemError.
	ErrUnknownItem = errors.New("unknown item")

	// ErrEmptyCandidateSet is matched by EmptyCandidateSetError.
	ErrEmptyCandidateSet = errors.New("empty candidate set")

	// ErrInvalidQuantity is returned for negative or non-finite quantities.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidCoefficient is returned by NewTable for identifiers or
	// coefficients that cannot be part of a table.
	ErrInvalidCoefficient = errors.New("invalid coefficient")
)

// UnknownItemError reports an identifier missing from the coefficient table.
type UnknownItemError struct {
	ID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %q", e.ID)
}

// Is reports whether target is ErrUnknownItem.
func (e *UnknownItemError) Is(target error) bool {
	return target == ErrUnknownItem
}

// EmptyCandidateSetError reports that no eligible candidates remained.
// Group is empty when the candidate set is not a named choice group.
type EmptyCandidateSetError struct {
	Group string
}

func (e *EmptyCandidateSetError) Error() string {
	if e.Group == "" {
		return "no eligible candidates"
	}
	return fmt.Sprintf("choice group %q has no candidates", e.Group)
}

// Is reports whether target is ErrEmptyCandidateSet.
func (e *EmptyCandidateSetError) Is(target error) bool {
	return target == ErrEmptyCandidateSet
}
