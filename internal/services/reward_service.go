package services

import (
	"context"

	"go.uber.org/zap"

	"lottopay/internal/config"
	"lottopay/internal/models/response_models"
	"lottopay/internal/repositories"
	"lottopay/pkg/metrics"
	"lottopay/pkg/utils"
)

type RewardServiceInterface interface {
	// CheckReward settles the user's reward if they hold an unclaimed
	// winning ticket. The claimed flag transitions at most once, so a
	// second call reports is_winner: false.
	CheckReward(ctx context.Context, userID string) (*response_models.RewardResponse, error)
}

func NewRewardService(
	drawRepo repositories.DrawRepository,
	cfg *config.Config,
	log *zap.Logger,
) RewardServiceInterface {
	return &rewardService{
		drawRepo: drawRepo,
		cfg:      cfg,
		log:      log,
	}
}

type rewardService struct {
	drawRepo repositories.DrawRepository
	cfg      *config.Config
	log      *zap.Logger
}

func (s *rewardService) CheckReward(ctx context.Context, userID string) (*response_models.RewardResponse, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}

	winner, err := s.drawRepo.ClaimByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		metrics.RecordClaim("not_winner")
		return &response_models.RewardResponse{IsWinner: false}, nil
	}

	metrics.RecordClaim("won")
	s.log.Info("reward claimed",
		zap.String("user_id", userID),
		zap.String("number", winner.WinningNumber),
		zap.Int64("amount", s.cfg.RewardAmountMinor))

	resp := &response_models.RewardResponse{
		IsWinner:      true,
		WinningNumber: winner.WinningNumber,
		RewardAmount:  s.cfg.RewardAmountMinor,
	}
	if winner.ClaimedAt != nil {
		resp.ClaimedAt = *winner.ClaimedAt
	}
	return resp, nil
}
