package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reseller-portal-go/internal/core"
	"reseller-portal-go/internal/models"
)

// PaymentHandler exposes the payment handshake endpoints.
type PaymentHandler struct {
	paymentService core.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps core.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// CreatePaymentIntent handles POST /api/v1/create-payment-intent.
// The client's amount and currency are accepted for wire compatibility
// but ignored: the intent is always created for the server-fixed amount.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	if _, ok := contextUserID(c); !ok {
		return
	}

	var req models.CreatePaymentIntentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
			return
		}
	}
	if req.Amount != 0 && req.Amount != core.PremiumAmount {
		log.Printf("CreatePaymentIntent: ignoring client-supplied amount %d", req.Amount)
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context())
	if err != nil {
		log.Printf("CreatePaymentIntent Error: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, CreatePaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	})
}

// VerifyPayment handles POST /api/v1/verify-payment: the server-side
// VERIFYING step of the handshake, including the premium grant.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("VerifyPayment Error for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, VerificationResponse{Verified: false, Error: "Error verifying payment"})
		return
	}

	writeVerification(c, result)
}

// VerifyPaymentStatus handles POST /api/v1/verify-payment-status: the
// read-only re-verification gate for the premium area.
func (h *PaymentHandler) VerifyPaymentStatus(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var req models.VerifyPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, VerificationResponse{Verified: false, Error: "No payment intent ID provided"})
		return
	}

	result, err := h.paymentService.VerifyStatus(c.Request.Context(), userID, req.PaymentIntentID)
	if err != nil {
		log.Printf("VerifyPaymentStatus Error for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, VerificationResponse{Verified: false, Error: "Error verifying payment status"})
		return
	}

	writeVerification(c, result)
}

func writeVerification(c *gin.Context, result *core.VerificationResult) {
	if result.Verified {
		c.JSON(http.StatusOK, VerificationResponse{Verified: true})
		return
	}

	status := http.StatusBadRequest
	if errors.Is(result.Cause, core.ErrProcessorUnavailable) {
		status = http.StatusBadGateway
	}
	c.JSON(status, VerificationResponse{Verified: false, Error: result.Reason})
}
