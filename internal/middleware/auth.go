package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/merseybathrooms/jobtracker/internal/auth"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthMiddleware verifies the bearer token on every request and puts the
// caller's identity on the context.
func AuthMiddleware(tokens *auth.Issuer) gin.HandlerFunc {
	return authenticate(tokens, true)
}

// OptionalAuth is AuthMiddleware for public routes: a missing header is
// allowed, a bad token is still rejected.
func OptionalAuth(tokens *auth.Issuer) gin.HandlerFunc {
	return authenticate(tokens, false)
}

func authenticate(tokens *auth.Issuer, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if !required {
				c.Next()
				return
			}
			httperr.Abort(c, httperr.StatusFor(httperr.CodeUnauthorized), httperr.CodeUnauthorized, "Missing authorization header.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, httperr.StatusFor(httperr.CodeUnauthorized), httperr.CodeUnauthorized, "Invalid authorization header.")
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, httperr.StatusFor(httperr.CodeUnauthorized), httperr.CodeUnauthorized, "Invalid or expired token.")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole lets the request through only when the authenticated role
// is one of roles. It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(roles, c.GetString(ContextUserRole)) {
			httperr.Abort(c, httperr.StatusFor(httperr.CodeForbidden), httperr.CodeForbidden, "You are not allowed to do that.")
			return
		}
		c.Next()
	}
}
