package model

import "time"

// MagazineIssue is one issue of the association magazine. Every issue carries
// an uploaded PDF; the blob fields follow the same consistency rules as Document.
type MagazineIssue struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishDate   time.Time `json:"publish_date"`
	CoverImage    string    `json:"cover_image"`
	DownloadCount int       `json:"download_count"`
	StoredName    string    `json:"-"`
	OriginalName  string    `json:"original_name"`
	MimeType      string    `json:"mime_type"`
	SizeBytes     int64     `json:"size_bytes"`
	CreatedAt     time.Time `json:"created_at"`
}
