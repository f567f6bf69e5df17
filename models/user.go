package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold. There are exactly two.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User model
type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username            string    `gorm:"uniqueIndex;not null" json:"username"`
	Email               string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash        string    `gorm:"not null" json:"-"`
	Role                string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	ForcePasswordChange bool      `gorm:"default:false" json:"forcePasswordChange"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Subscriber is a bare newsletter opt-in record.
type Subscriber struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Migrate function for auto migration
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Subscriber{}, &Order{})
}
