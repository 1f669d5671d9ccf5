package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"reseller-portal-go/internal/db"
	"reseller-portal-go/internal/models"
)

// The premium upgrade is a fixed, server-defined charge. The amount is
// never accepted from the client.
const (
	PremiumAmount   int64 = 4999 // minor units
	PremiumCurrency       = "gbp"
)

// IntentStatusSucceeded is the processor status required for a grant.
const IntentStatusSucceeded = "succeeded"

// HandshakeState enumerates the states of the verification handshake.
// Every run terminates in StateVerified or StateRejected.
type HandshakeState string

const (
	StateInit            HandshakeState = "INIT"
	StateAwaitingPayment HandshakeState = "AWAITING_PAYMENT"
	StateVerifying       HandshakeState = "VERIFYING"
	StateVerified        HandshakeState = "VERIFIED"
	StateRejected        HandshakeState = "REJECTED"
)

// Typed rejection causes for the handshake.
var (
	ErrPaymentNotSuccessful = errors.New("payment not successful")
	ErrInvalidClientSecret  = errors.New("invalid client secret")
	ErrAmountMismatch       = errors.New("payment amount mismatch")
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
	// ErrGrantNotApplied means the premium grant write did not take
	// effect on re-read. This is a hard error, never a silent success.
	ErrGrantNotApplied = errors.New("premium grant was not applied")
)

// VerificationResult is the terminal outcome of one handshake run.
type VerificationResult struct {
	State    HandshakeState
	Verified bool
	Reason   string
	Cause    error // sentinel for rejected outcomes, nil when verified
}

// paymentService implements PaymentService against a processor client
// and the user record store. Handlers are stateless: each request
// re-derives truth from the processor, so no cross-request locking is
// needed. The only cross-request invariant is idempotence of the
// VERIFIED transition, guaranteed by GrantPremium being a pure overwrite.
type paymentService struct {
	processor PaymentProcessor
	userRepo  db.UserRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService creates a PaymentService.
func NewPaymentService(processor PaymentProcessor, userRepo db.UserRepository, logger *zap.Logger) PaymentService {
	return &paymentService{
		processor: processor,
		userRepo:  userRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateIntent opens the handshake: it asks the processor for an intent
// of the fixed premium amount and returns its id and client secret.
func (s *paymentService) CreateIntent(ctx context.Context) (*ProcessorIntent, error) {
	intent, err := s.processor.CreateIntent(ctx, PremiumAmount, PremiumCurrency)
	if err != nil {
		s.logger.Error("payment intent creation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
	}
	return intent, nil
}

func rejected(cause error, reason string) *VerificationResult {
	return &VerificationResult{State: StateRejected, Reason: reason, Cause: cause}
}

// VerifyPayment runs the VERIFYING step of the handshake and, on
// success, grants the premium role. The redirect parameters are
// untrusted hints only: the intent is re-fetched from the processor by
// id, and the checks run in order — redirect status, client secret,
// processor status, exact amount.
func (s *paymentService) VerifyPayment(ctx context.Context, userID string, req models.VerifyPaymentRequest) (*VerificationResult, error) {
	if req.RedirectStatus != "" && req.RedirectStatus != IntentStatusSucceeded {
		return rejected(ErrPaymentNotSuccessful,
			fmt.Sprintf("payment not successful, redirect status: %s", req.RedirectStatus)), nil
	}

	intent, err := s.processor.RetrieveIntent(ctx, req.PaymentIntent)
	if err != nil {
		s.logger.Error("payment intent retrieval failed",
			zap.String("paymentIntentId", req.PaymentIntent),
			zap.Error(err),
		)
		return rejected(ErrProcessorUnavailable, "could not verify payment with the processor"), nil
	}

	// Defeats cross-session replay with a different intent's id.
	if intent.ClientSecret != req.PaymentIntentClientSecret {
		s.logger.Warn("client secret mismatch during verification",
			zap.String("paymentIntentId", req.PaymentIntent),
		)
		return rejected(ErrInvalidClientSecret, "invalid client secret"), nil
	}

	if intent.Status != IntentStatusSucceeded {
		return rejected(ErrPaymentNotSuccessful,
			fmt.Sprintf("payment not successful, status: %s", intent.Status)), nil
	}

	// Even an otherwise successful payment is rejected when the amount
	// does not match exactly; this closes the amount-tampering vector.
	if intent.Amount != PremiumAmount {
		s.logger.Warn("payment amount mismatch",
			zap.String("paymentIntentId", intent.ID),
			zap.Int64("expected", PremiumAmount),
			zap.Int64("received", intent.Amount),
		)
		return rejected(ErrAmountMismatch,
			fmt.Sprintf("invalid payment amount: expected %d, received %d", PremiumAmount, intent.Amount)), nil
	}

	if err := s.userRepo.GrantPremium(ctx, userID, intent.ID, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to grant premium to user '%s': %w", userID, err)
	}

	// Read-after-write: assert the grant took effect rather than
	// optimistically trusting the write.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: re-read after grant failed: %v", ErrGrantNotApplied, err)
	}
	if !user.IsPremium() || user.PaymentIntentID != intent.ID {
		return nil, fmt.Errorf("%w: user '%s' record does not reflect the grant", ErrGrantNotApplied, userID)
	}

	s.logger.Info("payment verified, premium granted",
		zap.String("userID", userID),
		zap.String("paymentIntentId", intent.ID),
	)
	return &VerificationResult{State: StateVerified, Verified: true}, nil
}

// VerifyStatus is the re-verification entry point used on every later
// visit to the premium area. It is a read-only gate: on failure the
// caller demotes the session by redirect, the stored role is never
// mutated here.
func (s *paymentService) VerifyStatus(ctx context.Context, userID, paymentIntentID string) (*VerificationResult, error) {
	if paymentIntentID == "" {
		return rejected(ErrPaymentNotSuccessful, "no payment intent ID provided"), nil
	}

	intent, err := s.processor.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		s.logger.Error("payment intent retrieval failed during re-verification",
			zap.String("paymentIntentId", paymentIntentID),
			zap.Error(err),
		)
		return rejected(ErrProcessorUnavailable, "could not verify payment with the processor"), nil
	}

	if intent.Status != IntentStatusSucceeded {
		return rejected(ErrPaymentNotSuccessful,
			fmt.Sprintf("payment not successful, status: %s", intent.Status)), nil
	}
	if intent.Amount != PremiumAmount {
		return rejected(ErrAmountMismatch,
			fmt.Sprintf("invalid payment amount: expected %d, received %d", PremiumAmount, intent.Amount)), nil
	}

	if err := s.userRepo.TouchVerification(ctx, userID, s.now().UTC()); err != nil {
		// The gate itself passed; a failed stamp is logged, not surfaced.
		s.logger.Warn("failed to record re-verification timestamp",
			zap.String("userID", userID),
			zap.Error(err),
		)
	}

	return &VerificationResult{State: StateVerified, Verified: true}, nil
}
