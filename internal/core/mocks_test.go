package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"reseller-portal-go/internal/models"
)

// MockUserRepository is a testify mock of db.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GrantPremium(ctx context.Context, userID, paymentIntentID string, at time.Time) error {
	args := m.Called(ctx, userID, paymentIntentID, at)
	return args.Error(0)
}

func (m *MockUserRepository) TouchVerification(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// MockPaymentProcessor is a testify mock of PaymentProcessor.
type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (*ProcessorIntent, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProcessorIntent), args.Error(1)
}

func (m *MockPaymentProcessor) RetrieveIntent(ctx context.Context, intentID string) (*ProcessorIntent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProcessorIntent), args.Error(1)
}
