package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scoutportal/internal/model"
	"scoutportal/internal/repository"
)

// NewsInput carries the client-supplied fields for creating or updating an article.
type NewsInput struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Categories  []string   `json:"categories"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// NewsService defines the use cases for news articles.
type NewsService interface {
	// List returns all articles, newest published first.
	List(ctx context.Context) ([]model.NewsArticle, error)
	Get(ctx context.Context, id string) (*model.NewsArticle, error)
	Create(ctx context.Context, in NewsInput) (*model.NewsArticle, error)
	Update(ctx context.Context, id string, in NewsInput) (*model.NewsArticle, error)
	Delete(ctx context.Context, id string) error
}

type newsService struct {
	repo repository.NewsRepository
}

// NewNewsService constructs a new NewsService.
func NewNewsService(repo repository.NewsRepository) NewsService {
	return &newsService{repo: repo}
}

func validateNewsInput(in *NewsInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.Content == "" || in.Author == "" || in.Excerpt == "" || len(in.Categories) == 0 {
		return fmt.Errorf("%w: missing or invalid required fields", ErrInvalidInput)
	}
	return nil
}

func (s *newsService) List(ctx context.Context) ([]model.NewsArticle, error) {
	return s.repo.ListAll(ctx)
}

func (s *newsService) Get(ctx context.Context, id string) (*model.NewsArticle, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *newsService) Create(ctx context.Context, in NewsInput) (*model.NewsArticle, error) {
	if err := validateNewsInput(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	publishedAt := now
	if in.PublishedAt != nil {
		publishedAt = *in.PublishedAt
	}
	article := &model.NewsArticle{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Author:      in.Author,
		Categories:  in.Categories,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, article)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}
	return stored, nil
}

func (s *newsService) Update(ctx context.Context, id string, in NewsInput) (*model.NewsArticle, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateNewsInput(&in); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	publishedAt := current.PublishedAt
	if in.PublishedAt != nil {
		publishedAt = *in.PublishedAt
	}

	article := &model.NewsArticle{
		ID:          id,
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Author:      in.Author,
		Categories:  in.Categories,
		PublishedAt: publishedAt,
	}
	stored, err := s.repo.Update(ctx, article)
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

func (s *newsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
