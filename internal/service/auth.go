package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scoutportal/internal/auth"
	"scoutportal/internal/model"
	"scoutportal/internal/repository"
)

// AuthResult is returned on successful register/login.
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// AuthService defines account registration and login. Credentials are
// verified here and turned into signed tokens; the caller's role is never
// taken from the client, only from a verified token.
type AuthService interface {
	// Register creates an account with a bcrypt-hashed password and issues a
	// token. An empty role defaults to "user".
	Register(ctx context.Context, email, password, role string) (*AuthResult, error)

	// Login verifies the credentials and issues a token. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) AuthService {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password, role string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	switch role {
	case "":
		role = model.RoleUser
	case model.RoleAdmin, model.RoleEditor, model.RoleUser:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Generate(stored.ID, stored.Email, stored.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, User: stored}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
