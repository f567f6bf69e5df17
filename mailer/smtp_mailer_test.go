package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	t.Run("plain text without attachments", func(t *testing.T) {
		body, err := buildMessage("5J Kitchens <noreply@5jkitchens.com>", Message{
			To:      []string{"a@example.com", "b@example.com"},
			Subject: "October specials",
			Body:    "Fresh churns are in.",
		})

		assert.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "To: a@example.com, b@example.com")
		assert.Contains(t, text, "Subject: October specials")
		assert.Contains(t, text, "Content-Type: text/plain")
		assert.Contains(t, text, "Fresh churns are in.")
		assert.NotContains(t, text, "multipart/mixed")
	})

	t.Run("attachments produce a multipart body", func(t *testing.T) {
		body, err := buildMessage("noreply@5jkitchens.com", Message{
			To:      []string{"a@example.com"},
			Subject: "Recipe card",
			Body:    "Attached.",
			Attachments: []Attachment{
				{Filename: "recipes.pdf", Content: []byte("%PDF-1.4 fake")},
			},
		})

		assert.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "multipart/mixed")
		assert.Contains(t, text, `attachment; filename="recipes.pdf"`)
		assert.Contains(t, text, "Content-Transfer-Encoding: base64")
	})
}

func TestSendRequiresRecipients(t *testing.T) {
	s := NewSMTPMailer("localhost", "587", "user", "pass", "noreply@5jkitchens.com")
	_, err := s.Send(context.Background(), Message{Subject: "x", Body: "y"})
	assert.Error(t, err)
}
