package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Record is a single document read back from the store, identified by its
// full hierarchical path.
type Record struct {
	Key  string
	Data json.RawMessage
}

// Store is the path-keyed record store the scheduler persists through.
// Paths are hierarchical, e.g. "users/{userId}/appointments/{appointmentId}".
type Store interface {
	// List returns every child record directly under path.
	List(ctx context.Context, path string) ([]Record, error)

	// Read returns the record at path, or ErrNotFound.
	Read(ctx context.Context, path string) (Record, error)

	// Write overwrites the record at path with the JSON encoding of record.
	Write(ctx context.Context, path string, record any) error

	// Update merge-patches fields into the record at path.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Delete removes the record at path. Deleting a missing record is not
	// an error.
	Delete(ctx context.Context, path string) error

	// DeleteTree removes the record at path and every record below it.
	DeleteTree(ctx context.Context, path string) error

	// NewID returns a globally unique key.
	NewID() string
}

var ErrNotFound = errors.New("record not found")

// OpError is a store-level failure: the operation was rejected or the
// backend was unreachable. Callers log these; there is no retry policy.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// PartialWriteError reports a dual-location write or delete where one side
// succeeded and the other failed, leaving the two copies inconsistent.
type PartialWriteError struct {
	Op         string
	DonePath   string
	FailedPath string
	Err        error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf(
		"store: partial %s: %s succeeded, %s failed: %v",
		e.Op, e.DonePath, e.FailedPath, e.Err,
	)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
