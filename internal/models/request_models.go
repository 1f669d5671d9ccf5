package models

// InitializeProfileRequest is the body of POST /users/initialize.
// SelectedPlan is the plan the user picked on the marketing page; it never
// sets the role directly (premium is only granted through the payment
// handshake), it only records intent.
type InitializeProfileRequest struct {
	SelectedPlan string `json:"selectedPlan,omitempty"`
}

// AddCartItemRequest is the body of POST /cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unitPrice" binding:"required"`
	ImageRef  string `json:"imageRef,omitempty"`
}

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
// Amount and currency are accepted for wire compatibility with the client
// but are never trusted; the server always charges its fixed amount.
type CreatePaymentIntentRequest struct {
	Amount   int64  `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// VerifyPaymentRequest is the body of POST /verify-payment, carrying the
// query parameters the processor appended to the return URL. All of them
// are untrusted hints; the server re-fetches the intent by ID.
type VerifyPaymentRequest struct {
	PaymentIntent             string `json:"payment_intent" binding:"required"`
	PaymentIntentClientSecret string `json:"payment_intent_client_secret" binding:"required"`
	RedirectStatus            string `json:"redirect_status,omitempty"`
}

// VerifyPaymentStatusRequest is the body of POST /verify-payment-status.
type VerifyPaymentStatusRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
