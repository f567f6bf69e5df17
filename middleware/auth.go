package middleware

import (
	"net/http"

	"github.com/StephenRJohns/5JKitchens/services"

	"github.com/gin-gonic/gin"
)

// CookieName is the admin session cookie.
const CookieName = "admin_token"

// AdminSubjectKey is the context key holding the verified admin user id.
const AdminSubjectKey = "admin_subject"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// AdminGuard protects admin-prefixed routes. A missing cookie redirects to
// the login page; an invalid or expired token additionally deletes the
// stale cookie. Guard failures are silent redirects, never error bodies.
func AdminGuard(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.SetCookie(CookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(AdminSubjectKey, sub)
		}
		c.Next()
	}
}
