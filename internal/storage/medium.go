// Package storage defines the durable medium the data store writes through.
// Concrete backends live in memstore, filestore and the database package.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotExist is returned by Read when nothing has been written under a key
var ErrNotExist = errors.New("key does not exist")

// ErrInvalidKey is returned for keys that are empty or escape the medium's namespace
var ErrInvalidKey = errors.New("invalid storage key")

// Medium is a byte-oriented key/value medium.
// Every call either succeeds completely or leaves the stored value unchanged.
type Medium interface {
	// Read returns the bytes stored under key, or ErrNotExist
	Read(ctx context.Context, key string) ([]byte, error)

	// Write durably replaces the value stored under key
	Write(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the medium's resources
	Close() error
}

// ValidateKey checks that key is a slash-separated path of non-empty segments
// without "." or ".." components
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsRune(seg, '\\') {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
