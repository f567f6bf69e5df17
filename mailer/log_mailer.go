package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer is the fallback used when SMTP is not configured: it logs the
// message and reports success, so development environments behave like a
// working deployment without delivering anything.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (l *LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	names := make([]string, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		names = append(names, att.Filename)
	}

	body := msg.Body
	if len(body) > 100 {
		body = body[:100]
	}

	l.logger.Info("email not delivered, SMTP not configured",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", body),
		zap.Strings("attachments", names),
	)

	return "Email logged to console (SMTP not configured).", nil
}
