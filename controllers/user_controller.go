package controllers

import (
	"errors"
	"net/http"

	"github.com/StephenRJohns/5JKitchens/services"
	"github.com/StephenRJohns/5JKitchens/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	users      *services.UserService
	newsletter *services.NewsletterService
}

func NewUserController(users *services.UserService, newsletter *services.NewsletterService) *UserController {
	return &UserController{users: users, newsletter: newsletter}
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users."})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Create(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required."})
		return
	}

	user, err := uc.users.Create(c.Request.Context(), req.Username, req.Email, req.Password, req.Role, req.ForcePasswordChange)
	if err != nil {
		if errors.Is(err, services.ErrUserConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user."})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	user, err := uc.users.Update(c.Request.Context(), id, services.UserUpdate{
		Username:            req.Username,
		Email:               req.Email,
		Password:            req.Password,
		Role:                req.Role,
		ForcePasswordChange: req.ForcePasswordChange,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user."})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ToggleNewsletter flips subscriber presence for the user's email.
func (uc *UserController) ToggleNewsletter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	subscribed, err := uc.newsletter.ToggleForUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}
