package services

import (
	"context"
	"errors"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("username or email already exists")
)

const bcryptCost = 10

// UserUpdate carries the optional fields of an admin edit. Nil means
// "leave unchanged".
type UserUpdate struct {
	Username            *string
	Email               *string
	Password            *string
	Role                *string
	ForcePasswordChange *bool
}

// UserService implements the admin user-management operations.
type UserService struct {
	userRepo IUserRepository
}

func NewUserService(userRepo IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, username, email, password, role string, forcePasswordChange bool) (*models.User, error) {
	if _, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, ErrUserConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		ID:                  uuid.New(),
		Username:            username,
		Email:               email,
		PasswordHash:        string(hash),
		Role:                role,
		ForcePasswordChange: forcePasswordChange,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Username != nil && *update.Username != "" {
		user.Username = *update.Username
	}
	if update.Email != nil && *update.Email != "" {
		user.Email = *update.Email
	}
	if update.Role != nil && *update.Role != "" {
		user.Role = *update.Role
	}
	if update.ForcePasswordChange != nil {
		user.ForcePasswordChange = *update.ForcePasswordChange
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
