package core

import (
	"context"
	"time"

	"reseller-portal-go/internal/models"
)

// UserService defines the interface for user-profile operations.
type UserService interface {
	// GetOrCreate retrieves a user record by ID, creating it with default
	// values if it does not exist. The boolean reports whether a record
	// was created.
	GetOrCreate(ctx context.Context, userID, email, displayName, selectedPlan string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// CartService defines the interface for session-scoped cart operations.
// All operations are synchronous and act on in-process state only.
type CartService interface {
	Add(ownerID string, item models.CartItem)
	Remove(ownerID, productID string)
	Clear(ownerID string)
	Items(ownerID string) []models.CartItem
	Total(ownerID string) int64
}

// PaymentService drives the payment verification handshake.
type PaymentService interface {
	CreateIntent(ctx context.Context) (*ProcessorIntent, error)
	VerifyPayment(ctx context.Context, userID string, req models.VerifyPaymentRequest) (*VerificationResult, error)
	VerifyStatus(ctx context.Context, userID, paymentIntentID string) (*VerificationResult, error)
}

// CatalogService exposes the proxied commerce catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
}

// ProcessorIntent is the portal's view of one payment intent at the
// processor, re-fetched by ID whenever it matters.
type ProcessorIntent struct {
	ID           string    `json:"id"`
	ClientSecret string    `json:"clientSecret"`
	Status       string    `json:"status"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	Created      time.Time `json:"created"`
}

// PaymentProcessor is the boundary to the external payment processor.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*ProcessorIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*ProcessorIntent, error)
}

// CatalogClient is the boundary to the external commerce catalog API.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
}
