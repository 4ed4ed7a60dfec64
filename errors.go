package carteira

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotSupported is returned by operations that are declared in the API but
// deliberately not wired, such as family member mutations.
var ErrNotSupported = errors.New("not supported")

// FieldErrors maps a field name to its validation message. A request is
// validated in full before the map is returned, so callers see every failing
// field at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for a field, keeping the first message when a field
// fails more than one rule.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Merge folds other into e, keeping existing messages.
func (e FieldErrors) Merge(other FieldErrors) {
	for f, msg := range other {
		e.Add(f, msg)
	}
}

// OrNil returns the map as an error, or nil when no field failed.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// NotFoundError reports an update or delete referencing an unknown id. It is
// non-fatal; the caller decides whether to surface it.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
