package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lottopay/internal/models/db_models"
	"lottopay/pkg/utils"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *db_models.Subscription) error
	DeleteByUserID(ctx context.Context, userID string) error
	FindByUserID(ctx context.Context, userID string) (*db_models.Subscription, error)
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

type subscriptionRepository struct {
	db *gorm.DB
}

// Create inserts the subscription. The unique index on user_id makes this the
// atomic check-and-create: two concurrent subscribes for one user cannot both
// commit.
func (r *subscriptionRepository) Create(ctx context.Context, sub *db_models.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrAlreadySubscribed
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *subscriptionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.Subscription{})
	if res.Error != nil {
		return utils.ErrDatabaseError
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotSubscribed
	}
	return nil
}

func (r *subscriptionRepository) FindByUserID(ctx context.Context, userID string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return &sub, nil
}
