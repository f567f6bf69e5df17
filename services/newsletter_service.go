package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/StephenRJohns/5JKitchens/mailer"
	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmail  = errors.New("valid email required")
	ErrNoSubscribers = errors.New("no subscribers found")
	ErrEmptyMessage  = errors.New("subject and message are required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ISubscriberRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Upsert(ctx context.Context, email string) error
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context) ([]models.Subscriber, error)
}

// NewsletterService manages subscriber opt-in and broadcast delivery.
type NewsletterService struct {
	subscriberRepo ISubscriberRepository
	userRepo       IUserRepository
	sender         mailer.EmailSender
	logger         *zap.Logger
}

func NewNewsletterService(
	subscriberRepo ISubscriberRepository,
	userRepo IUserRepository,
	sender mailer.EmailSender,
	logger *zap.Logger,
) *NewsletterService {
	return &NewsletterService{
		subscriberRepo: subscriberRepo,
		userRepo:       userRepo,
		sender:         sender,
		logger:         logger,
	}
}

// Subscribe upserts the address; subscribing twice is a no-op success.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return s.subscriberRepo.Upsert(ctx, email)
}

// ToggleForUser flips subscriber presence for the user's email and returns
// the resulting subscription state.
func (s *NewsletterService) ToggleForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	if _, err := s.subscriberRepo.FindByEmail(ctx, user.Email); err == nil {
		if err := s.subscriberRepo.DeleteByEmail(ctx, user.Email); err != nil {
			return false, err
		}
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := s.subscriberRepo.Upsert(ctx, user.Email); err != nil {
		return false, err
	}
	return true, nil
}

// Broadcast sends one email to every subscriber, synchronously within the
// request. A failed send is surfaced to the caller and not retried.
func (s *NewsletterService) Broadcast(ctx context.Context, subject, message string, attachments []mailer.Attachment) (int, string, error) {
	if subject == "" || message == "" {
		return 0, "", ErrEmptyMessage
	}

	subscribers, err := s.subscriberRepo.List(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("list subscribers: %w", err)
	}
	if len(subscribers) == 0 {
		return 0, "", ErrNoSubscribers
	}

	emails := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		emails = append(emails, sub.Email)
	}

	result, err := s.sender.Send(ctx, mailer.Message{
		To:          emails,
		Subject:     subject,
		Body:        message,
		Attachments: attachments,
	})
	if err != nil {
		s.logger.Error("newsletter broadcast failed",
			zap.Int("recipients", len(emails)),
			zap.Error(err),
		)
		return 0, "", err
	}

	s.logger.Info("newsletter broadcast sent",
		zap.Int("recipients", len(emails)),
		zap.String("subject", subject),
	)
	return len(emails), result, nil
}
