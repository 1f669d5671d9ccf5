package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"reseller-portal-go/internal/core"
)

// AuthCookieName is the session cookie the edge guard reads.
const AuthCookieName = "auth-token"

// EdgeGuard applies the pre-render guard to page-class paths. It sees
// only the session cookie — no role information: protected paths without
// a usable cookie redirect to login with the origin path preserved, and
// allowed requests get an Authorization header derived from the cookie.
//
// API, health, favicon and asset paths are outside the guard's surface.
func EdgeGuard(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isGuardExempt(path) {
			c.Next()
			return
		}

		token, hasCookie := usableCookieToken(c)

		decision := core.EvaluateEdge(path, hasCookie)
		if decision.Action == core.ActionRedirect {
			logger.Debug("edge guard redirect",
				zap.String("path", path),
				zap.String("target", decision.Target),
			)
			c.Redirect(http.StatusTemporaryRedirect, decision.Target)
			c.Abort()
			return
		}

		if hasCookie {
			c.Request.Header.Set("Authorization", "Bearer "+token)
		}
		c.Next()
	}
}

func isGuardExempt(path string) bool {
	if strings.HasPrefix(path, "/api/") || path == "/health" || path == "/favicon.ico" {
		return true
	}
	// Asset requests carry a file extension; pages never do.
	if idx := strings.LastIndex(path, "/"); idx >= 0 && strings.Contains(path[idx:], ".") {
		return true
	}
	return false
}

// usableCookieToken returns the cookie token when present and not known
// to be expired. The edge has no key material, so the token is only
// peeked at unverified; real verification happens in the auth middleware.
func usableCookieToken(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(AuthCookieName)
	if err != nil || raw == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", false
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return "", false
	}
	return raw, true
}
