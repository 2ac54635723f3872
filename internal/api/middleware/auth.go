package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KKK-90/POSTRKR-App/internal/service"
	"github.com/KKK-90/POSTRKR-App/pkg/response"
)

// SessionCookie holds the signed session token.
const SessionCookie = "postrkr_session"

// UsernameKey is the gin context key of the signed-in user.
const UsernameKey = "username"

// SessionToken reads the token from the session cookie, falling back to
// Authorization: Bearer <token>.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionAuth resolves a valid session into UsernameKey. Requests without
// one pass through anonymously; RequireSession rejects them.
func SessionAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := SessionToken(c); token != "" {
			if username, err := authSvc.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(UsernameKey, username)
			}
		}

		c.Next()
	}
}

// RequireSession rejects requests that SessionAuth did not sign in.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UsernameKey) == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
