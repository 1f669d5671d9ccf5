package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reseller-portal-go/internal/core"
	"reseller-portal-go/internal/middleware"
	"reseller-portal-go/internal/models"
)

// AuthHandler handles authentication-adjacent API endpoints.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// InitializeUserProfile handles POST /api/v1/users/initialize.
// Called by a client after a Firebase authentication event to ensure a
// user record exists. The body may carry the plan selected on the
// marketing page; that selection is recorded but never sets the role.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	email := c.GetString(middleware.ContextUserEmail)
	displayName := c.GetString(middleware.ContextDisplayName)

	// An empty body is fine; only reject malformed JSON.
	var req models.InitializeProfileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
			return
		}
	}

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID, email, displayName, req.SelectedPlan)
	if err != nil {
		log.Printf("InitializeUserProfile Error: userService.GetOrCreate failed for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize user profile", Details: err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, user)
		return
	}
	c.JSON(http.StatusOK, user)
}

// contextUserID pulls the authenticated uid the auth middleware placed in
// the context, replying 401 when it is missing.
func contextUserID(c *gin.Context) (string, bool) {
	rawUserID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return "", false
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format in context"})
		return "", false
	}
	return userID, true
}
