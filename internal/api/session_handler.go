package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reseller-portal-go/internal/core"
	"reseller-portal-go/internal/middleware"
)

// SessionHandler resolves the caller's session state server-side.
type SessionHandler struct {
	roles *core.RoleResolver
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(roles *core.RoleResolver) *SessionHandler {
	return &SessionHandler{roles: roles}
}

// GetSession handles GET /api/v1/session. The role is re-derived from
// the user record on every call — never taken from the client. When a
// "path" query parameter is given, the response also carries the route
// guard's redirect target for that path, if any.
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	role := h.roles.Resolve(c.Request.Context(), userID)

	resp := SessionResponse{
		Identity: &IdentityResponse{
			UID:   userID,
			Email: c.GetString(middleware.ContextUserEmail),
		},
		Role: role,
	}

	if path := c.Query("path"); path != "" {
		state := core.SessionState{
			Identity: &core.Identity{UID: userID},
			Role:     role,
		}
		decision := core.NewClientGuard().Evaluate(state, path, c.Query("from"))
		if decision.Action == core.ActionRedirect {
			resp.Redirect = decision.Target
		}
	}

	c.JSON(http.StatusOK, resp)
}
