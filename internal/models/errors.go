package models

import (
	"errors"
	"fmt"
)

// Error classes surfaced by the data store. Match with errors.Is.
var (
	// ErrValidation indicates caller-supplied data violates an invariant
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced id does not exist
	ErrNotFound = errors.New("not found")

	// ErrStorage indicates the persistence medium failed to read or write
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports which field was rejected and why
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports the kind of entity and the id that was looked up
type NotFoundError struct {
	Kind string // "category" or "item"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a failure from the underlying medium
type StorageError struct {
	Op  string // "read", "write", "delete", "decode", "encode"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
