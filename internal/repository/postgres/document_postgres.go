package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, name, file_name, doc_type, file_path, owner_id, uploaded_by, tags, admin_only, uploaded_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Name,
		&d.FileName,
		&d.DocType,
		&d.FilePath,
		&d.OwnerID,
		&d.UploadedBy,
		&d.Tags,
		&d.AdminOnly,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// IsNoRowsError reports whether err is the driver's empty-result sentinel.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Create inserts a new document row and returns the stored record with its assigned id.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (title, name, file_name, doc_type, file_path, owner_id, uploaded_by, tags, admin_only, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Title,
		doc.Name,
		doc.FileName,
		doc.DocType,
		doc.FilePath,
		doc.OwnerID,
		doc.UploadedBy,
		doc.Tags,
		doc.AdminOnly,
		doc.UploadedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// FindByOwner returns all documents owned by ownerID in natural store order.
func (r *DocumentPostgres) FindByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE owner_id = $1`
	return r.queryDocuments(ctx, q, ownerID)
}

// FindAll returns every document record in natural store order.
func (r *DocumentPostgres) FindAll(ctx context.Context) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents`
	return r.queryDocuments(ctx, q)
}

func (r *DocumentPostgres) queryDocuments(ctx context.Context, q string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateMetadata overwrites title and tags; all other columns are untouched.
func (r *DocumentPostgres) UpdateMetadata(ctx context.Context, id int64, title, tags string) (*model.Document, error) {
	const q = `
		UPDATE documents SET title = $2, tags = $3
		WHERE id = $1
		RETURNING ` + documentColumns
	return scanDocument(r.db.QueryRowContext(ctx, q, id, title, tags))
}

// Delete removes a document by ID. A missing row is reported as sql.ErrNoRows
// so callers can answer not-found.
func (r *DocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
