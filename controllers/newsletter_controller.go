package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/StephenRJohns/5JKitchens/mailer"
	"github.com/StephenRJohns/5JKitchens/services"
	"github.com/StephenRJohns/5JKitchens/types"

	"github.com/gin-gonic/gin"
)

type NewsletterController struct {
	newsletter *services.NewsletterService
}

func NewNewsletterController(newsletter *services.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletter: newsletter}
}

// Subscribe upserts a newsletter opt-in. Subscribing twice is a no-op
// success.
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req types.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required."})
		return
	}

	if err := nc.newsletter.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Send broadcasts a newsletter to every subscriber. The form is multipart:
// subject, message, and zero or more attachments.
func (nc *NewsletterController) Send(c *gin.Context) {
	subject := c.PostForm("subject")
	message := c.PostForm("message")

	if subject == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subject and message are required."})
		return
	}

	var attachments []mailer.Attachment
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fileHeader := range form.File["attachments"] {
			if fileHeader.Size == 0 {
				continue
			}
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment."})
				return
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment."})
				return
			}
			attachments = append(attachments, mailer.Attachment{
				Filename: fileHeader.Filename,
				Content:  content,
			})
		}
	}

	sent, result, err := nc.newsletter.Broadcast(c.Request.Context(), subject, message, attachments)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subject and message are required."})
		case errors.Is(err, services.ErrNoSubscribers):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No subscribers found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "sent": sent, "message": result})
}
