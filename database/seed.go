package database

import (
	"errors"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin idempotently creates the bootstrap admin account.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "butterchef").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("qw12QW!@"), 10)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		ID:           uuid.New(),
		Username:     "butterchef",
		Email:        "admin@5jkitchens.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}).Error
}
