package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFile     = errors.New("empty file")
	ErrOwnerRequired = errors.New("owner identity is required")
	ErrNotFound      = errors.New("document not found")
	ErrReaderNil     = errors.New("reader is nil")
)

// StorageError marks a failure while reading from or writing to the blob store,
// so callers can distinguish it from bad input and from database failures.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// PersistenceError marks a failure in the metadata store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persistence %s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }
