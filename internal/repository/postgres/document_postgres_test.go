package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"scoutportal/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var documentCols = []string{"id", "title", "stored_name", "original_name", "mime_type", "size_bytes", "uploaded_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:           "test-uuid",
		Title:        "Modulo A",
		StoredName:   "documents/1700000000000-a.pdf",
		OriginalName: "a.pdf",
		MimeType:     "application/pdf",
		SizeBytes:    1000,
		UploadedAt:   now,
	}

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, doc.Title, doc.StoredName, doc.OriginalName, doc.MimeType, doc.SizeBytes, doc.UploadedAt)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.StoredName, doc.OriginalName, doc.MimeType, doc.SizeBytes, doc.UploadedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.StoredName, result.StoredName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow("test-id", "Modulo A", "documents/x.pdf", "a.pdf", "application/pdf", 1000, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "test-id", doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(documentCols).
		AddRow("id-2", "Newer", "documents/b.pdf", "b.pdf", "application/pdf", 10, time.Now()).
		AddRow("id-1", "Older", "documents/a.pdf", "a.pdf", "application/pdf", 20, time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY uploaded_at DESC").
		WillReturnRows(rows)

	items, err := repo.ListAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "id-2", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Deleting a missing row is not an error at this layer.
	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, "missing"))
}
