package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fill taxonomy. A failed fill abandons the
// single entity it was building; it never corrupts caches or sibling
// entities from the same payload.
var (
	// ErrMissingField marks a payload without a field required to
	// construct the entity (usually the ID).
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedField marks a field whose JSON type or value could
	// not be decoded.
	ErrMalformedField = errors.New("malformed field")
)

func missingField(entity, field string) error {
	return fmt.Errorf("%s: %w: %s", entity, ErrMissingField, field)
}

func malformed(entity string, err error) error {
	return fmt.Errorf("%s: %w: %v", entity, ErrMalformedField, err)
}
