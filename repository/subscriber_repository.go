package repository

import (
	"context"

	"github.com/StephenRJohns/5JKitchens/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Upsert subscribes an email, treating an already-subscribed address as a
// no-op success. The unique key on email makes this at-most-once-effective
// without locking.
func (r *SubscriberRepository) Upsert(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&models.Subscriber{Email: email}).Error
}

func (r *SubscriberRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Delete(&models.Subscriber{}, "email = ?", email).Error
}

func (r *SubscriberRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&subs).Error
	return subs, err
}
