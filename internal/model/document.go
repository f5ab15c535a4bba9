package model

import "time"

// Document represents the metadata record of an uploaded file.
// This is a pure domain model with no database-specific dependencies or tags.
// File bytes live in the blob store; only the path/key is recorded here.
type Document struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Name       string    `json:"name"`      // original client-provided filename
	FileName   string    `json:"file_name"` // server-generated storage filename
	DocType    string    `json:"doc_type"`
	FilePath   string    `json:"file_path"`
	OwnerID    string    `json:"owner_id"`
	UploadedBy string    `json:"uploaded_by"`
	Tags       string    `json:"tags"` // comma-separated free text
	AdminOnly  bool      `json:"admin_only"`
	UploadedAt time.Time `json:"uploaded_at"`
}
