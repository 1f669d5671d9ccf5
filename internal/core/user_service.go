package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reseller-portal-go/internal/db"
	"reseller-portal-go/internal/models"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// GetOrCreate retrieves a user record by ID, creating one on first login.
// New records always start with the free role: a premium plan selection is
// recorded on the profile but only routes the client into the payment
// flow. The role flips to premium exclusively through the verified
// payment handshake.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, displayName, selectedPlan string) (*models.User, bool, error) {
	if s.userRepo == nil {
		return nil, false, errors.New("UserRepository not initialized in UserService")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			if selectedPlan != models.RolePremium {
				selectedPlan = models.RoleFree
			}
			newUser := &models.User{
				ID:           userID,
				Email:        email,
				DisplayName:  displayName,
				Role:         models.RoleFree,
				SelectedPlan: selectedPlan,
				CreatedAt:    time.Now().UTC(),
				UpdatedAt:    time.Now().UTC(),
			}
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				return nil, false, fmt.Errorf("failed to create user (id: %s) after not found: %w", userID, createErr)
			}
			return newUser, true, nil
		}
		return nil, false, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}

	if user == nil {
		return nil, false, fmt.Errorf("repository returned (nil, nil) for user ID '%s'", userID)
	}

	// Keep the stored profile in sync with the identity provider's
	// claims; email and display name can change at the provider.
	changed := false
	if email != "" && user.Email != email {
		user.Email = email
		changed = true
	}
	if displayName != "" && user.DisplayName != displayName {
		user.DisplayName = displayName
		changed = true
	}
	if changed {
		user.UpdatedAt = time.Now().UTC()
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, false, fmt.Errorf("failed to refresh profile for user '%s': %w", userID, err)
		}
	}

	return user, false, nil
}

// GetByID retrieves a user record by ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("UserRepository not initialized in UserService")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user with ID '%s' (repository returned nil user and nil error)", ErrUserNotFound, userID)
	}
	return user, nil
}
