package postgres

import (
	"context"
	"database/sql"

	"scoutportal/internal/model"
	"scoutportal/internal/repository"
)

// NewsPostgres is a PostgreSQL implementation of repository.NewsRepository.
type NewsPostgres struct {
	db *sql.DB
}

// NewNewsPostgres creates a new NewsPostgres repository.
func NewNewsPostgres(db *sql.DB) *NewsPostgres {
	return &NewsPostgres{db: db}
}

var _ repository.NewsRepository = (*NewsPostgres)(nil)

const newsColumns = "id, title, content, excerpt, author, categories, published_at, created_at, updated_at"

func scanArticle(row interface{ Scan(...any) error }) (*model.NewsArticle, error) {
	var (
		a          model.NewsArticle
		categories []byte
	)
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Excerpt,
		&a.Author,
		&categories,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(categories, &a.Categories); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new article row and returns the stored record.
func (r *NewsPostgres) Create(ctx context.Context, article *model.NewsArticle) (*model.NewsArticle, error) {
	categories, err := marshalJSONB(article.Categories)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO news_articles (id, title, content, excerpt, author, categories, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + newsColumns
	row := r.db.QueryRowContext(ctx, q,
		article.ID,
		article.Title,
		article.Content,
		article.Excerpt,
		article.Author,
		categories,
		article.PublishedAt,
		article.CreatedAt,
		article.UpdatedAt,
	)
	return scanArticle(row)
}

// FindByID fetches a single article by its ID.
func (r *NewsPostgres) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	const q = `SELECT ` + newsColumns + ` FROM news_articles WHERE id = $1`
	return scanArticle(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every article, newest published first.
func (r *NewsPostgres) ListAll(ctx context.Context) ([]model.NewsArticle, error) {
	const q = `SELECT ` + newsColumns + ` FROM news_articles ORDER BY published_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsArticle, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the mutable fields of an article and returns the stored row.
func (r *NewsPostgres) Update(ctx context.Context, article *model.NewsArticle) (*model.NewsArticle, error) {
	categories, err := marshalJSONB(article.Categories)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE news_articles
		SET title = $2, content = $3, excerpt = $4, author = $5, categories = $6,
		    published_at = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + newsColumns
	row := r.db.QueryRowContext(ctx, q,
		article.ID,
		article.Title,
		article.Content,
		article.Excerpt,
		article.Author,
		categories,
		article.PublishedAt,
	)
	return scanArticle(row)
}

// Delete removes an article by ID. Missing rows surface as sql.ErrNoRows.
func (r *NewsPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM news_articles WHERE id = $1`
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
