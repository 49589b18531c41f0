package middleware

import (
	"net/http"
	"strings"

	"sublime_ops/internal/usecase"
	"sublime_ops/pkg"

	"github.com/gin-gonic/gin"
)

const usernameContextKey = "staff_username"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session token", http.StatusUnauthorized)

// RequireAuth validates the bearer session token on every request it guards
// and records the authenticated username for audit attribution.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		username, err := auth.ValidateToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(usernameContextKey, username)
		c.Next()
	}
}

// UsernameFromContext returns the authenticated staff username, or "" when
// the request did not pass RequireAuth.
func UsernameFromContext(c *gin.Context) string {
	return c.GetString(usernameContextKey)
}
