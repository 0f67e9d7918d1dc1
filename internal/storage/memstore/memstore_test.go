package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/todoey/internal/storage"
)

func TestReadMissingKey(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.Read(context.Background(), "categories")
	if !errors.Is(err, storage.ErrNotExist) {
		t.Fatalf("Expected ErrNotExist, got %v", err)
	}
}

func TestWriteReadDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	data := []byte("hello")
	if err := s.Write(ctx, "category/a", data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Mutating the caller's buffer must not change the stored value
	data[0] = 'j'

	got, err := s.Read(ctx, "category/a")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}

	got[0] = 'y'
	again, _ := s.Read(ctx, "category/a")
	if string(again) != "hello" {
		t.Errorf("Read returned an aliased buffer: %s", again)
	}

	if err := s.Delete(ctx, "category/a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "category/a"); err != nil {
		t.Fatalf("Deleting a missing key should succeed, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d keys", s.Len())
	}
}

func TestInvalidKey(t *testing.T) {
	t.Parallel()

	s := New()
	if err := s.Write(context.Background(), "../x", nil); !errors.Is(err, storage.ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	if err := s.Write(ctx, "categories", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("canceled write must not store anything")
	}
}
