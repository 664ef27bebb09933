package model

import "time"

// Document is the metadata record for one uploaded file.
// It is a pure domain model with no database-specific dependencies or tags;
// the file bytes themselves live in the blob store under StoredName.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	StoredName   string    `json:"-"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
