package models

import "time"

// Role values a user record may carry.
const (
	RoleFree    = "free"
	RolePremium = "premium"
)

// PaymentStatusCompleted is the only payment status this app ever writes.
// It is set exclusively alongside a role transition to premium.
const PaymentStatusCompleted = "completed"

// User represents a user record in the document store.
// The document ID is the Firebase Auth UID.
type User struct {
	ID                      string    `json:"id" firestore:"-"` // Firebase Auth UID, used as the document ID
	Email                   string    `json:"email" firestore:"email"`
	DisplayName             string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Role                    string    `json:"role" firestore:"role"`
	SelectedPlan            string    `json:"selectedPlan,omitempty" firestore:"selectedPlan,omitempty"`
	PaymentStatus           string    `json:"paymentStatus,omitempty" firestore:"paymentStatus,omitempty"`
	PaymentIntentID         string    `json:"paymentIntentId,omitempty" firestore:"paymentIntentId,omitempty"`
	PaymentDate             time.Time `json:"paymentDate,omitempty" firestore:"paymentDate,omitempty"`
	LastPaymentVerification time.Time `json:"lastPaymentVerification,omitempty" firestore:"lastPaymentVerification,omitempty"`
	CreatedAt               time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt               time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// IsPremium reports whether the record satisfies the premium pairing:
// the role alone is never trusted without the completed payment fields.
func (u *User) IsPremium() bool {
	return u.Role == RolePremium && u.PaymentStatus == PaymentStatusCompleted && u.PaymentIntentID != ""
}
