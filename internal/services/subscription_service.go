package services

import (
	"context"

	"go.uber.org/zap"

	"lottopay/internal/models/db_models"
	"lottopay/internal/repositories"
	"lottopay/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, userID string, plan db_models.PlanType) (*db_models.Subscription, error)
	Unsubscribe(ctx context.Context, userID string) error
	PlanFor(ctx context.Context, userID string) (db_models.PlanType, error)
}

func NewSubscriptionService(subRepo repositories.SubscriptionRepository, log *zap.Logger) SubscriptionServiceInterface {
	return &subscriptionService{
		subRepo: subRepo,
		log:     log,
	}
}

type subscriptionService struct {
	subRepo repositories.SubscriptionRepository
	log     *zap.Logger
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID string, plan db_models.PlanType) (*db_models.Subscription, error) {
	if userID == "" || !plan.Valid() {
		return nil, utils.ErrInvalidInput
	}

	sub := &db_models.Subscription{
		UserID:   userID,
		PlanType: plan,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info("user subscribed",
		zap.String("user_id", userID),
		zap.String("plan", string(plan)))
	return sub, nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID string) error {
	if userID == "" {
		return utils.ErrInvalidInput
	}

	if err := s.subRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	s.log.Info("user unsubscribed", zap.String("user_id", userID))
	return nil
}

func (s *subscriptionService) PlanFor(ctx context.Context, userID string) (db_models.PlanType, error) {
	sub, err := s.subRepo.FindByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if sub == nil {
		return "", utils.ErrNotSubscribed
	}
	return sub.PlanType, nil
}
