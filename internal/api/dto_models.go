package api

import "reseller-portal-go/internal/models"

// ErrorResponse is the generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SessionResponse is the body of GET /session: the resolved identity and
// derived role, plus the guard's redirect target when a path was given.
type SessionResponse struct {
	Identity *IdentityResponse `json:"identity"`
	Role     string            `json:"role"`
	Redirect string            `json:"redirect,omitempty"`
}

// IdentityResponse is the client-visible identity subset.
type IdentityResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// CartResponse carries the cart items and the recomputed total.
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total int64             `json:"total"`
}

// CreatePaymentIntentResponse returns the processor intent handle the
// client needs to collect payment.
type CreatePaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// VerificationResponse reports a handshake or re-verification outcome.
type VerificationResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}
