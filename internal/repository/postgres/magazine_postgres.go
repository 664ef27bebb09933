package postgres

import (
	"context"
	"database/sql"

	"scoutportal/internal/model"
	"scoutportal/internal/repository"
)

// MagazinePostgres is a PostgreSQL implementation of repository.MagazineRepository.
type MagazinePostgres struct {
	db *sql.DB
}

// NewMagazinePostgres creates a new MagazinePostgres repository.
func NewMagazinePostgres(db *sql.DB) *MagazinePostgres {
	return &MagazinePostgres{db: db}
}

var _ repository.MagazineRepository = (*MagazinePostgres)(nil)

const issueColumns = "id, number, title, description, publish_date, cover_image, download_count, stored_name, original_name, mime_type, size_bytes, created_at"

func scanIssue(row interface{ Scan(...any) error }) (*model.MagazineIssue, error) {
	var i model.MagazineIssue
	if err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Title,
		&i.Description,
		&i.PublishDate,
		&i.CoverImage,
		&i.DownloadCount,
		&i.StoredName,
		&i.OriginalName,
		&i.MimeType,
		&i.SizeBytes,
		&i.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts a new issue row and returns the stored record.
func (r *MagazinePostgres) Create(ctx context.Context, issue *model.MagazineIssue) (*model.MagazineIssue, error) {
	const q = `
		INSERT INTO magazine_issues (id, number, title, description, publish_date, cover_image, download_count, stored_name, original_name, mime_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + issueColumns
	row := r.db.QueryRowContext(ctx, q,
		issue.ID,
		issue.Number,
		issue.Title,
		issue.Description,
		issue.PublishDate,
		issue.CoverImage,
		issue.DownloadCount,
		issue.StoredName,
		issue.OriginalName,
		issue.MimeType,
		issue.SizeBytes,
		issue.CreatedAt,
	)
	return scanIssue(row)
}

// FindByID fetches a single issue by its ID.
func (r *MagazinePostgres) FindByID(ctx context.Context, id string) (*model.MagazineIssue, error) {
	const q = `SELECT ` + issueColumns + ` FROM magazine_issues WHERE id = $1`
	return scanIssue(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every issue, newest publish date first.
func (r *MagazinePostgres) ListAll(ctx context.Context) ([]model.MagazineIssue, error) {
	const q = `SELECT ` + issueColumns + ` FROM magazine_issues ORDER BY publish_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MagazineIssue, 0)
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateMeta replaces the descriptive fields of an issue and returns the
// stored row. The blob fields are immutable once written.
func (r *MagazinePostgres) UpdateMeta(ctx context.Context, issue *model.MagazineIssue) (*model.MagazineIssue, error) {
	const q = `
		UPDATE magazine_issues
		SET number = $2, title = $3, description = $4, publish_date = $5, cover_image = $6
		WHERE id = $1
		RETURNING ` + issueColumns
	row := r.db.QueryRowContext(ctx, q,
		issue.ID,
		issue.Number,
		issue.Title,
		issue.Description,
		issue.PublishDate,
		issue.CoverImage,
	)
	return scanIssue(row)
}

// IncrementDownloads bumps the download counter by one.
func (r *MagazinePostgres) IncrementDownloads(ctx context.Context, id string) error {
	const q = `UPDATE magazine_issues SET download_count = download_count + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Delete removes an issue by ID. It does not return an error if the row does not exist.
func (r *MagazinePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM magazine_issues WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
