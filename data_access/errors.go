package data_access

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by lookups that matched no document.
var ErrNotFound = errors.New("document not found")

// ValidationError reports caller-supplied input that violates a precondition
// before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a write the storage layer rejected or failed to
// acknowledge: duplicate keys, connectivity loss, unacknowledged writes.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// UnacknowledgedWrite reports a write the storage layer did not acknowledge,
// typed like every other persistence failure.
func UnacknowledgedWrite(op string) error {
	return persistence(op, errors.New("write was not acknowledged"))
}

// IsDuplicateKey reports whether err stems from a unique-index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(errors.Unwrap(err)) || mongo.IsDuplicateKeyError(err)
}
