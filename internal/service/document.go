package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"docvault/internal/model"
	"docvault/internal/repository"
	"docvault/internal/storage"
)

// UploadInput carries the user-supplied fields of a multipart upload plus the
// caller's identity claim extracted by the auth middleware.
type UploadInput struct {
	Title        string
	Tags         string
	OriginalName string
	Owner        string
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload streams the file to blob storage under a timestamp-prefixed
	// sanitized name, saves metadata to the DB, and compensates by deleting
	// the blob if the metadata insert fails.
	Upload(ctx context.Context, r io.Reader, size int64, in UploadInput) (*model.Document, error)

	// Get returns a single document's metadata by its ID.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// ListAll returns every document record.
	ListAll(ctx context.Context) ([]model.Document, error)

	// ListByOwner returns the documents whose owner matches the identity claim.
	ListByOwner(ctx context.Context, owner string) ([]model.Document, error)

	// Download resolves a document's blob for streaming. A record whose blob
	// is gone from storage reports ErrNotFound, same as a missing record.
	Download(ctx context.Context, id int64) (io.ReadCloser, *model.Document, error)

	// UpdateMetadata overwrites title and tags only.
	UpdateMetadata(ctx context.Context, id int64, title, tags string) (*model.Document, error)

	// Delete removes the blob and the metadata record.
	Delete(ctx context.Context, id int64) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.BlobStore
	repo  repository.DocumentRepository
	now   func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.BlobStore, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo, now: time.Now}
}

// unsafeNameChars matches every character that may not appear in a storage filename.
var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with an underscore.
func SanitizeFilename(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// DocType extracts the extension after the last dot of a storage filename,
// or "unknown" when there is no extension.
func DocType(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[i+1:]
	}
	return "unknown"
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, size int64, in UploadInput) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if in.Owner == "" {
		return nil, ErrOwnerRequired
	}

	uploadedAt := s.now()
	fileName := fmt.Sprintf("%d_%s", uploadedAt.UnixMilli(), SanitizeFilename(in.OriginalName))

	path, err := s.store.Put(ctx, fileName, r, size)
	if err != nil {
		return nil, &StorageError{Op: "put", Err: err}
	}

	doc := &model.Document{
		Title:      in.Title,
		Name:       in.OriginalName,
		FileName:   fileName,
		DocType:    DocType(fileName),
		FilePath:   path,
		OwnerID:    in.Owner,
		UploadedBy: in.Owner,
		Tags:       in.Tags,
		AdminOnly:  false,
		UploadedAt: uploadedAt,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Compensate: the blob must not outlive a failed metadata insert.
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			return nil, &PersistenceError{Op: "create", Err: fmt.Errorf("%v; rollback delete failed: %w", err, delErr)}
		}
		return nil, &PersistenceError{Op: "create", Err: err}
	}
	return stored, nil
}

// Get returns a document's metadata by ID.
func (s *documentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	return doc, nil
}

func (s *documentService) ListAll(ctx context.Context) ([]model.Document, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return docs, nil
}

func (s *documentService) ListByOwner(ctx context.Context, owner string) ([]model.Document, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	docs, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return docs, nil
}

// Download opens the stored blob of a document for streaming.
func (s *documentService) Download(ctx context.Context, id int64) (io.ReadCloser, *model.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(ctx, doc.FilePath)
	if err != nil {
		// The record can outlive its file; a dangling path is a not-found,
		// not a server failure.
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, &StorageError{Op: "open", Err: err}
	}
	return rc, doc, nil
}

func (s *documentService) UpdateMetadata(ctx context.Context, id int64, title, tags string) (*model.Document, error) {
	doc, err := s.repo.UpdateMetadata(ctx, id, title, tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "update", Err: err}
	}
	return doc, nil
}

// Delete removes the blob first, then the metadata record. A blob already gone
// from storage does not block deleting the record.
func (s *documentService) Delete(ctx context.Context, id int64) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.FilePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return &StorageError{Op: "delete", Err: err}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}
