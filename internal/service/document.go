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

const documentKeyPrefix = "documents"

// DocumentService defines the use cases for the document archive.
//
// Upload and Delete keep the blob store and the metadata records consistent
// across partial failures: an upload that fails after the blob write removes
// the blob again, and a deletion never removes metadata while the blob's fate
// is unknown. Perfect consistency is not guaranteed — a record whose blob is
// gone surfaces as ErrFileMissing on download.
type DocumentService interface {
	// Upload stores the payload in the blob store, validates the title, and
	// inserts the metadata record. Any failure after the blob write deletes
	// the blob again (best-effort; a failed cleanup is logged, not returned).
	Upload(ctx context.Context, r io.Reader, title, originalName, contentType string, size int64) (*model.Document, error)

	// List returns all document records, newest upload first.
	List(ctx context.Context) ([]model.Document, error)

	// Download resolves the record and opens its blob for streaming. The
	// caller owns the returned ReadCloser.
	Download(ctx context.Context, id string) (io.ReadCloser, *model.Document, error)

	// Delete removes the blob first, then the metadata record. A blob that is
	// already absent counts as deleted; any other blob failure aborts with the
	// record intact.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

// discardBlob undoes a blob write after a failed upload. Best-effort: a blob
// that is already gone is fine, anything else is logged and swallowed.
func (s *documentService) discardBlob(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotExist) {
		logEvent("error", "blob_cleanup_failed", map[string]any{
			"stored_name": key,
			"error":       err.Error(),
		})
	}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, title, originalName, contentType string, size int64) (*model.Document, error) {
	if r == nil {
		return nil, ErrNoFile
	}

	now := time.Now().UTC()
	storedName := generateStoredName(documentKeyPrefix, originalName, now)

	// The blob is written before the title is validated; a rejected upload
	// must therefore clean its blob up again.
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

	title = strings.TrimSpace(title)
	if title == "" {
		s.discardBlob(ctx, storedName)
		return nil, ErrTitleRequired
	}

	doc := &model.Document{
		ID:           uuid.New().String(),
		Title:        title,
		StoredName:   storedName,
		OriginalName: originalName,
		MimeType:     contentType,
		SizeBytes:    objInfo.Size,
		UploadedAt:   now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.discardBlob(ctx, storedName)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("save metadata: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.ListAll(ctx)
}

func (s *documentService) Download(ctx context.Context, id string) (io.ReadCloser, *model.Document, error) {
	if id == "" {
		return nil, nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("find record: %w", err)
	}

	rc, _, err := s.store.Get(ctx, doc.StoredName)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			// Record present, blob gone: a past partial failure is showing.
			return nil, nil, ErrFileMissing
		}
		return nil, nil, fmt.Errorf("open blob: %w", err)
	}
	return rc, doc, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("find record: %w", err)
	}

	// Blob first. Absence means the goal state is already reached; any other
	// failure aborts so the record keeps pointing at whatever is on disk.
	if err := s.store.Delete(ctx, doc.StoredName); err != nil && !errors.Is(err, storage.ErrNotExist) {
		return fmt.Errorf("delete blob: %w", err)
	}

	// If this fails the blob is gone but the record remains: a known, accepted
	// inconsistency window, reported distinctly from a blob failure.
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
