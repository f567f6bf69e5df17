package controllers

import (
	"errors"
	"net/http"

	"github.com/StephenRJohns/5JKitchens/middleware"
	"github.com/StephenRJohns/5JKitchens/services"
	"github.com/StephenRJohns/5JKitchens/types"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 60 * 60 * 24 * 7 // 7 days, matches the token expiry

type AuthController struct {
	auth       *services.AuthService
	tokens     *services.TokenService
	production bool
}

func NewAuthController(auth *services.AuthService, tokens *services.TokenService, production bool) *AuthController {
	return &AuthController{auth: auth, tokens: tokens, production: production}
}

// Login authenticates an admin and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required."})
		return
	}

	user, err := ac.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied."})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		}
		return
	}

	token, err := ac.tokens.Issue(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, sessionMaxAge, "/", "", ac.production, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout clears the session cookie. There is no server-side invalidation.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", ac.production, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
