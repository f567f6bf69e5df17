package services

import (
	"context"
	"errors"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Keeping them indistinguishable prevents account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied means the credentials were valid but the account is
	// not an admin.
	ErrAccessDenied = errors.New("access denied")
)

type IUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuthService struct {
	userRepo IUserRepository
}

func NewAuthService(userRepo IUserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login verifies a username/password pair and requires the admin role. On
// success it returns the user for token issuance. It has no side effects
// beyond the lookup.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Role != models.RoleAdmin {
		return nil, ErrAccessDenied
	}

	return user, nil
}
