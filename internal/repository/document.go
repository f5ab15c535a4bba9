package repository

import (
	"context"

	"docvault/internal/model"
)

// DocumentRepository defines data access for document metadata using SQL queries only.
// No business logic here, strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns it with the DB-assigned id.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// FindByOwner returns every document whose owner_id equals ownerID.
	FindByOwner(ctx context.Context, ownerID string) ([]model.Document, error)

	// FindAll returns every document record. No pagination: the full result
	// set is materialized, matching the collection listing contract.
	FindAll(ctx context.Context) ([]model.Document, error)

	// UpdateMetadata overwrites title and tags only and returns the updated row.
	// Missing rows surface as sql.ErrNoRows.
	UpdateMetadata(ctx context.Context, id int64, title, tags string) (*model.Document, error)

	// Delete removes a document by ID. Missing rows surface as sql.ErrNoRows.
	Delete(ctx context.Context, id int64) error
}
