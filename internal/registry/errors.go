package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrRoleMismatch is returned when the declared role name does not
	// match the role expected by the creation entry point.
	ErrRoleMismatch = errors.New("declared role does not match this endpoint")

	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already in use")
	ErrDuplicatePhone    = errors.New("phone number already in use")
	ErrNotFound          = errors.New("record not found")
)

// FieldErrors aggregates every field-level validation failure found
// while unpacking a payload, keyed by field name, so a caller can
// report all problems in one response.
type FieldErrors map[string][]string

// Add records a validation failure for a field.
func (f FieldErrors) Add(field string, err error) {
	f[field] = append(f[field], err.Error())
}

// Merge folds another FieldErrors in under a payload prefix, e.g.
// "patient.user.email" for a report's nested patient account.
func (f FieldErrors) Merge(prefix string, other FieldErrors) {
	for field, msgs := range other {
		f[prefix+"."+field] = append(f[prefix+"."+field], msgs...)
	}
}

// Err returns the receiver as an error, or nil when no failures were
// recorded.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(f[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
