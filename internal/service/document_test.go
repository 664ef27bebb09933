package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scoutportal/internal/model"
	repomocks "scoutportal/internal/repository/mocks"
	"scoutportal/internal/storage"
	storagemocks "scoutportal/internal/storage/mocks"
)

func newDocumentFixture(t *testing.T) (*storagemocks.MockStorage, *repomocks.MockDocumentRepository, DocumentService) {
	t.Helper()
	mStore := new(storagemocks.MockStorage)
	mRepo := new(repomocks.MockDocumentRepository)
	return mStore, mRepo, NewDocumentService(mStore, mRepo)
}

func TestDocumentUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		body := strings.NewReader("%PDF-1.4")

		mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), body, mock.Anything).
			Return(storage.ObjectInfo{Size: 8}, nil)
		mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Document")).
			Return(func(_ context.Context, doc *model.Document) *model.Document { return doc }, nil)

		doc, err := svc.Upload(ctx, body, "  Annual Report  ", "report.pdf", "application/pdf", 8)
		require.NoError(t, err)
		assert.Equal(t, "Annual Report", doc.Title)
		assert.Equal(t, "report.pdf", doc.OriginalName)
		assert.Equal(t, int64(8), doc.SizeBytes)
		assert.NotEmpty(t, doc.ID)
		assert.Contains(t, doc.StoredName, "documents/")
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)

		_, err := svc.Upload(ctx, nil, "Annual Report", "", "", 0)
		assert.ErrorIs(t, err, ErrNoFile)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank title removes stored blob", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		body := strings.NewReader("data")

		var storedKey string
		mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), body, mock.Anything).
			Run(func(args mock.Arguments) { storedKey = args.String(1) }).
			Return(storage.ObjectInfo{Size: 4}, nil)
		mStore.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

		_, err := svc.Upload(ctx, body, "   ", "report.pdf", "application/pdf", 4)
		assert.ErrorIs(t, err, ErrTitleRequired)
		mStore.AssertCalled(t, "Delete", mock.Anything, storedKey)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blob write failure", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		body := strings.NewReader("data")

		mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), body, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("disk full"))

		_, err := svc.Upload(ctx, body, "Annual Report", "report.pdf", "application/pdf", 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store blob")
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("metadata insert failure removes stored blob", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		body := strings.NewReader("data")

		mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), body, mock.Anything).
			Return(storage.ObjectInfo{Size: 4}, nil)
		mStore.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)
		mRepo.On("Create", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := svc.Upload(ctx, body, "Annual Report", "report.pdf", "application/pdf", 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save metadata")
		mStore.AssertExpectations(t)
	})

	t.Run("constraint violation maps to validation error", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		body := strings.NewReader("data")

		mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), body, mock.Anything).
			Return(storage.ObjectInfo{Size: 4}, nil)
		mStore.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)
		mRepo.On("Create", mock.Anything, mock.Anything).
			Return(nil, &pgconn.PgError{Code: "23514"})

		_, err := svc.Upload(ctx, body, "Annual Report", "report.pdf", "application/pdf", 4)
		assert.ErrorIs(t, err, ErrValidation)
		mStore.AssertExpectations(t)
	})

	t.Run("failed blob cleanup is swallowed", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		body := strings.NewReader("data")

		mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), body, mock.Anything).
			Return(storage.ObjectInfo{Size: 4}, nil)
		mStore.On("Delete", mock.Anything, mock.AnythingOfType("string")).
			Return(errors.New("backend down"))
		mRepo.On("Create", mock.Anything, mock.Anything).
			Return(nil, errors.New("insert failed"))

		_, err := svc.Upload(ctx, body, "Annual Report", "report.pdf", "application/pdf", 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save metadata")
	})
}

func TestDocumentDownload(t *testing.T) {
	ctx := context.Background()
	doc := &model.Document{
		ID:           "d1",
		Title:        "Annual Report",
		StoredName:   "documents/1-report.pdf",
		OriginalName: "report.pdf",
		MimeType:     "application/pdf",
		SizeBytes:    4,
	}

	t.Run("success", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "d1").Return(doc, nil)
		mStore.On("Get", mock.Anything, doc.StoredName).
			Return(io.NopCloser(strings.NewReader("data")), storage.ObjectInfo{Size: 4}, nil)

		rc, got, err := svc.Download(ctx, "d1")
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, doc, got)
		data, _ := io.ReadAll(rc)
		assert.Equal(t, "data", string(data))
	})

	t.Run("unknown id", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Download(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("record without blob", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "d1").Return(doc, nil)
		mStore.On("Get", mock.Anything, doc.StoredName).
			Return(nil, storage.ObjectInfo{}, storage.ErrNotExist)

		_, _, err := svc.Download(ctx, "d1")
		assert.ErrorIs(t, err, ErrFileMissing)
	})

	t.Run("empty id", func(t *testing.T) {
		_, _, svc := newDocumentFixture(t)
		_, _, err := svc.Download(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDocumentDelete(t *testing.T) {
	ctx := context.Background()
	doc := &model.Document{ID: "d1", StoredName: "documents/1-report.pdf"}

	t.Run("success", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "d1").Return(doc, nil)
		mStore.On("Delete", mock.Anything, doc.StoredName).Return(nil)
		mRepo.On("Delete", mock.Anything, "d1").Return(nil)

		require.NoError(t, svc.Delete(ctx, "d1"))
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("blob already absent still deletes record", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "d1").Return(doc, nil)
		mStore.On("Delete", mock.Anything, doc.StoredName).Return(storage.ErrNotExist)
		mRepo.On("Delete", mock.Anything, "d1").Return(nil)

		require.NoError(t, svc.Delete(ctx, "d1"))
		mRepo.AssertCalled(t, "Delete", mock.Anything, "d1")
	})

	t.Run("blob failure keeps record", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "d1").Return(doc, nil)
		mStore.On("Delete", mock.Anything, doc.StoredName).Return(errors.New("backend down"))

		err := svc.Delete(ctx, "d1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delete blob")
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		mStore, mRepo, svc := newDocumentFixture(t)
		mRepo.On("FindByID", mock.Anything, "d1").Return(doc, nil).Once()
		mStore.On("Delete", mock.Anything, doc.StoredName).Return(nil).Once()
		mRepo.On("Delete", mock.Anything, "d1").Return(nil).Once()
		mRepo.On("FindByID", mock.Anything, "d1").Return(nil, sql.ErrNoRows).Once()

		require.NoError(t, svc.Delete(ctx, "d1"))
		assert.ErrorIs(t, svc.Delete(ctx, "d1"), ErrNotFound)
	})
}
