package storage

import (
	"context"
	"errors"
	"io"
)

// Package storage contains blob storage abstractions for uploaded file bytes.
// The metadata record only carries the path/key returned by Put; implementations
// decide what that path means (absolute filesystem path, object key, ...).

// ErrObjectExists is returned by Put when the destination name is already taken.
// Uploads never overwrite silently; a same-millisecond collision on the storage
// filename deterministically fails the second writer.
var ErrObjectExists = errors.New("storage: object already exists")

// ErrObjectNotFound is returned by Open/Delete when no blob exists at the path.
// A record can outlive its blob (external deletion), so callers must treat this
// as a not-found condition rather than an internal failure.
var ErrObjectNotFound = errors.New("storage: object not found")

// BlobStore persists raw file bytes under server-generated storage filenames.
type BlobStore interface {
	// Put streams r to a new blob named name and returns the stable path/key
	// to record in document metadata. Fails with ErrObjectExists if taken.
	Put(ctx context.Context, name string, r io.Reader, size int64) (string, error)
	// Open returns the blob content at the recorded path for streaming.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes the blob at the recorded path.
	// Returns ErrObjectNotFound if there is nothing to remove.
	Delete(ctx context.Context, path string) error
}
