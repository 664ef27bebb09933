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

// CampInput carries the client-supplied fields for creating or updating a camp.
type CampInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	Province    string            `json:"province"`
	Contact     model.CampContact `json:"contact"`
	Capacity    int               `json:"capacity"`
	Services    []string          `json:"services"`
	Images      []string          `json:"images"`
}

// CampService defines the use cases for camp sites. New camps are proposals
// (status pending) until an admin approves or rejects them; the public listing
// only ever shows approved camps.
type CampService interface {
	// ListApproved returns camps visible to regular members.
	ListApproved(ctx context.Context) ([]model.Camp, error)
	// ListAll returns every camp regardless of status (admin view).
	ListAll(ctx context.Context) ([]model.Camp, error)
	Get(ctx context.Context, id string) (*model.Camp, error)
	// Create stores a new proposal with status pending, recording the proposer.
	Create(ctx context.Context, in CampInput, addedBy string) (*model.Camp, error)
	Update(ctx context.Context, id string, in CampInput) (*model.Camp, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (*model.Camp, error)
	Reject(ctx context.Context, id string) (*model.Camp, error)
}

type campService struct {
	repo repository.CampRepository
}

// NewCampService constructs a new CampService.
func NewCampService(repo repository.CampRepository) CampService {
	return &campService{repo: repo}
}

func validateCampInput(in *CampInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Province = strings.ToUpper(strings.TrimSpace(in.Province))
	in.Contact.Email = strings.ToLower(strings.TrimSpace(in.Contact.Email))

	switch {
	case in.Name == "",
		in.Description == "",
		in.Address == "",
		in.City == "",
		in.Contact.Phone == "",
		in.Contact.Email == "",
		in.Contact.Responsible == "":
		return fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}
	if len(in.Province) != 2 {
		return fmt.Errorf("%w: province must be a two-letter code", ErrInvalidInput)
	}
	if in.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be a positive number", ErrInvalidInput)
	}
	return nil
}

func (s *campService) ListApproved(ctx context.Context) ([]model.Camp, error) {
	return s.repo.ListByStatus(ctx, model.CampStatusApproved)
}

func (s *campService) ListAll(ctx context.Context) ([]model.Camp, error) {
	return s.repo.ListByStatus(ctx, "")
}

func (s *campService) Get(ctx context.Context, id string) (*model.Camp, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	camp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return camp, nil
}

func (s *campService) Create(ctx context.Context, in CampInput, addedBy string) (*model.Camp, error) {
	if err := validateCampInput(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	camp := &model.Camp{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		Province:    in.Province,
		Contact:     in.Contact,
		Capacity:    in.Capacity,
		Services:    in.Services,
		Status:      model.CampStatusPending,
		Images:      in.Images,
		AddedBy:     addedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, camp)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}
	return stored, nil
}

func (s *campService) Update(ctx context.Context, id string, in CampInput) (*model.Camp, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateCampInput(&in); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	camp := &model.Camp{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		Province:    in.Province,
		Contact:     in.Contact,
		Capacity:    in.Capacity,
		Services:    in.Services,
		Status:      current.Status,
		Images:      in.Images,
	}
	stored, err := s.repo.Update(ctx, camp)
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

func (s *campService) Delete(ctx context.Context, id string) error {
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

func (s *campService) setStatus(ctx context.Context, id, status string) (*model.Camp, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	camp, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return camp, nil
}

func (s *campService) Approve(ctx context.Context, id string) (*model.Camp, error) {
	return s.setStatus(ctx, id, model.CampStatusApproved)
}

func (s *campService) Reject(ctx context.Context, id string) (*model.Camp, error) {
	return s.setStatus(ctx, id, model.CampStatusRejected)
}
