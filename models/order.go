package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of a checkout submission. Line items are
// stored as serialized JSON; amounts are integer cents.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName     string    `gorm:"not null" json:"firstName"`
	LastName      string    `gorm:"not null" json:"lastName"`
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address1      string    `gorm:"not null" json:"address1"`
	Address2      string    `json:"address2,omitempty"`
	City          string    `gorm:"not null" json:"city"`
	State         string    `gorm:"not null" json:"state"`
	Zip           string    `gorm:"not null" json:"zip"`
	Country       string    `gorm:"not null;default:'US'" json:"country"`
	Items         string    `gorm:"type:text;not null" json:"items"`
	SubtotalCents int64     `gorm:"not null" json:"subtotalCents"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
