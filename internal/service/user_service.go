package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shgportal/internal/domain"
	"shgportal/internal/port"
)

// CreateUserInput is the DTO for creating a user.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
	District string          `json:"district"`
	Block    string          `json:"block"`
}

// UpdateUserInput is the DTO for updating a user.
type UpdateUserInput struct {
	Email    *string          `json:"email"`
	FullName *string          `json:"full_name"`
	Role     *domain.UserRole `json:"role"`
	District *string          `json:"district"`
	Block    *string          `json:"block"`
	IsActive *bool            `json:"is_active"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// SessionStore holds per-user state kept outside the database.
type SessionStore interface {
	Discard(userID uuid.UUID)
}

type userService struct {
	repo     port.UserRepository
	sessions SessionStore
}

// NewUserService creates a new UserService implementation. sessions may be
// nil; otherwise a user's session is dropped when they are deleted or
// deactivated.
func NewUserService(repo port.UserRepository, sessions SessionStore) UserService {
	return &userService{repo: repo, sessions: sessions}
}

func (s *userService) discard(userID uuid.UUID) {
	if s.sessions != nil {
		s.sessions.Discard(userID)
	}
}

// validateJurisdiction checks that district-level roles carry a district and
// block-level roles carry both.
func validateJurisdiction(role domain.UserRole, district, block string) error {
	if !domain.ValidUserRoles[role] {
		return domain.ErrInvalidRole
	}
	switch role {
	case domain.RoleDMMU:
		if district == "" {
			return domain.ErrInvalidJurisdiction
		}
	case domain.RoleBMMU:
		if district == "" || block == "" {
			return domain.ErrInvalidJurisdiction
		}
	}
	if block != "" && district == "" {
		return domain.ErrInvalidJurisdiction
	}
	return nil
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := validateJurisdiction(input.Role, input.District, input.Block); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         input.Role,
		District:     input.District,
		Block:        input.Block,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.District != nil {
		user.District = *input.District
	}
	if input.Block != nil {
		user.Block = *input.Block
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := validateJurisdiction(user.Role, user.District, user.Block); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if !user.IsActive {
		s.discard(userID)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.discard(userID)
	return nil
}
