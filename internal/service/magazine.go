package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"scoutportal/internal/model"
	"scoutportal/internal/repository"
	"scoutportal/internal/storage"
)

const issueKeyPrefix = "issues"

// IssueInput carries the descriptive fields of a magazine issue. The PDF
// itself travels separately as a payload on Create.
type IssueInput struct {
	Number      string     `json:"number"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	CoverImage  string     `json:"cover_image"`
}

// MagazineService defines the use cases for magazine issues. Each issue owns
// an uploaded PDF; the blob and its record follow the same consistency
// workflows as documents (blob-first writes with compensating deletes,
// blob-first deletion).
type MagazineService interface {
	// List returns all issues, newest publish date first.
	List(ctx context.Context) ([]model.MagazineIssue, error)

	// Create stores the PDF payload, validates the metadata, and inserts the
	// issue record. Any failure after the blob write deletes the blob again.
	Create(ctx context.Context, r io.Reader, in IssueInput, originalName, contentType string, size int64) (*model.MagazineIssue, error)

	// UpdateMeta replaces the descriptive fields; the PDF is immutable.
	UpdateMeta(ctx context.Context, id string, in IssueInput) (*model.MagazineIssue, error)

	// Download opens the issue's PDF for streaming and bumps the download
	// counter (best-effort; a failed bump is logged, not returned).
	Download(ctx context.Context, id string) (io.ReadCloser, *model.MagazineIssue, error)

	// Delete removes the PDF blob first, then the issue record.
	Delete(ctx context.Context, id string) error
}

type magazineService struct {
	store storage.Storage
	repo  repository.MagazineRepository
}

// NewMagazineService constructs a new MagazineService.
func NewMagazineService(store storage.Storage, repo repository.MagazineRepository) MagazineService {
	return &magazineService{store: store, repo: repo}
}

func (s *magazineService) discardBlob(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotExist) {
		logEvent("error", "blob_cleanup_failed", map[string]any{
			"stored_name": key,
			"error":       err.Error(),
		})
	}
}

func validateIssueInput(in *IssueInput) error {
	in.Number = strings.TrimSpace(in.Number)
	in.Title = strings.TrimSpace(in.Title)
	if in.Number == "" {
		return fmt.Errorf("%w: issue number is required", ErrInvalidInput)
	}
	if in.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

func (s *magazineService) List(ctx context.Context) ([]model.MagazineIssue, error) {
	return s.repo.ListAll(ctx)
}

func (s *magazineService) Create(ctx context.Context, r io.Reader, in IssueInput, originalName, contentType string, size int64) (*model.MagazineIssue, error) {
	if r == nil {
		return nil, ErrNoFile
	}

	now := time.Now().UTC()
	storedName := generateStoredName(issueKeyPrefix, originalName, now)

	objInfo, err := s.store.Put(ctx, storedName, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	if err := validateIssueInput(&in); err != nil {
		s.discardBlob(ctx, storedName)
		return nil, err
	}

	publishDate := now
	if in.PublishDate != nil {
		publishDate = *in.PublishDate
	}
	issue := &model.MagazineIssue{
		ID:           uuid.New().String(),
		Number:       in.Number,
		Title:        in.Title,
		Description:  in.Description,
		PublishDate:  publishDate,
		CoverImage:   in.CoverImage,
		StoredName:   storedName,
		OriginalName: originalName,
		MimeType:     contentType,
		SizeBytes:    objInfo.Size,
		CreatedAt:    now,
	}
	stored, err := s.repo.Create(ctx, issue)
	if err != nil {
		s.discardBlob(ctx, storedName)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("save metadata: %w", err)
	}
	return stored, nil
}

func (s *magazineService) UpdateMeta(ctx context.Context, id string, in IssueInput) (*model.MagazineIssue, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateIssueInput(&in); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	publishDate := current.PublishDate
	if in.PublishDate != nil {
		publishDate = *in.PublishDate
	}

	issue := &model.MagazineIssue{
		ID:          id,
		Number:      in.Number,
		Title:       in.Title,
		Description: in.Description,
		PublishDate: publishDate,
		CoverImage:  in.CoverImage,
	}
	stored, err := s.repo.UpdateMeta(ctx, issue)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}
	return stored, nil
}

func (s *magazineService) Download(ctx context.Context, id string) (io.ReadCloser, *model.MagazineIssue, error) {
	if id == "" {
		return nil, nil, ErrIDRequired
	}
	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("find record: %w", err)
	}

	rc, _, err := s.store.Get(ctx, issue.StoredName)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, ErrFileMissing
		}
		return nil, nil, fmt.Errorf("open blob: %w", err)
	}

	// The counter is informational; its failure must not break the download.
	if err := s.repo.IncrementDownloads(ctx, id); err != nil {
		logEvent("warn", "download_counter_failed", map[string]any{
			"issue_id": id,
			"error":    err.Error(),
		})
	} else {
		issue.DownloadCount++
	}
	return rc, issue, nil
}

func (s *magazineService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("find record: %w", err)
	}

	if err := s.store.Delete(ctx, issue.StoredName); err != nil && !errors.Is(err, storage.ErrNotExist) {
		return fmt.Errorf("delete blob: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
