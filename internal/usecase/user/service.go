package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
)

// Service defines the interface for user account management
type Service interface {
	// Create registers a new account
	Create(ctx context.Context, input CreateInput) (*entities.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, userID uuid.UUID) (*entities.User, error)

	// Update patches the user's profile
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*entities.User, error)
}

type service struct {
	userRepo repositories.UserRepository
}

// NewService creates the user service
func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

// CreateInput represents input for registering an account
type CreateInput struct {
	Email      string
	Name       string
	TargetRole *string
	Timezone   string
}

func (s *service) Create(ctx context.Context, input CreateInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, entities.ErrUserAlreadyExists
	}

	u := entities.NewUser(email, strings.TrimSpace(input.Name))
	u.TargetRole = input.TargetRole
	if input.Timezone != "" {
		u.Timezone = input.Timezone
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Last-active tracking is best effort.
	_ = s.userRepo.UpdateLastActive(ctx, userID)
	return u, nil
}

// UpdateInput represents a partial profile update; nil fields are left
// unchanged
type UpdateInput struct {
	Name        *string
	TargetRole  *string
	AvatarURL   *string
	Timezone    *string
	Preferences map[string]interface{}
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*entities.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		u.Name = strings.TrimSpace(*input.Name)
	}
	if input.TargetRole != nil {
		u.TargetRole = input.TargetRole
	}
	if input.AvatarURL != nil {
		u.AvatarURL = input.AvatarURL
	}
	if input.Timezone != nil && *input.Timezone != "" {
		u.Timezone = *input.Timezone
	}
	if input.Preferences != nil {
		prefs, err := json.Marshal(input.Preferences)
		if err != nil {
			return nil, fmt.Errorf("failed to encode preferences: %w", err)
		}
		u.Preferences = prefs
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}
