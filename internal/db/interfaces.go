package db

import (
	"context"
	"time"

	"reseller-portal-go/internal/models"
)

// UserRepository defines the interface for user record storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// GrantPremium applies the verified-payment field set as a pure
	// overwrite. Re-running it for the same intent must leave the record
	// in the same final state.
	GrantPremium(ctx context.Context, userID, paymentIntentID string, at time.Time) error
	// TouchVerification records a successful read-only re-verification.
	// It never touches the role or payment status.
	TouchVerification(ctx context.Context, userID string, at time.Time) error
}
