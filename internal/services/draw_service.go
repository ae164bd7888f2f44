package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lottopay/internal/config"
	"lottopay/internal/models/db_models"
	"lottopay/internal/models/response_models"
	"lottopay/internal/repositories"
	"lottopay/pkg/metrics"
	"lottopay/pkg/utils"
)

type DrawServiceInterface interface {
	// SelectWinner draws uniformly over the flattened ticket pool, so a
	// user holding three tickets is three times as likely to win as a user
	// holding one.
	SelectWinner(ctx context.Context) (*response_models.WinnerResponse, error)
	SelectWinnerManual(ctx context.Context, number string) (*response_models.WinnerResponse, error)
	// ClearPool removes entries up to the latest winner's drawing epoch and
	// returns how many were removed.
	ClearPool(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*response_models.StatsResponse, error)
}

func NewDrawService(
	drawRepo repositories.DrawRepository,
	entryRepo repositories.EntryRepository,
	src RandomSource,
	cfg *config.Config,
	log *zap.Logger,
) DrawServiceInterface {
	return &drawService{
		drawRepo:  drawRepo,
		entryRepo: entryRepo,
		src:       src,
		cfg:       cfg,
		log:       log,
	}
}

type drawService struct {
	drawRepo  repositories.DrawRepository
	entryRepo repositories.EntryRepository
	src       RandomSource
	cfg       *config.Config
	log       *zap.Logger
}

func (s *drawService) SelectWinner(ctx context.Context) (*response_models.WinnerResponse, error) {
	started := time.Now()
	outcome := "fail"
	defer func() { metrics.RecordDraw("random", outcome, started) }()

	winner, err := s.drawRepo.SelectWinner(ctx, s.src.Intn)
	if err != nil {
		return nil, err
	}
	outcome = "success"

	s.log.Info("winner selected",
		zap.String("user_id", winner.UserID),
		zap.String("number", winner.WinningNumber),
		zap.Int64("epoch", winner.Epoch))
	return winnerResponse(winner), nil
}

func (s *drawService) SelectWinnerManual(ctx context.Context, number string) (*response_models.WinnerResponse, error) {
	if len(number) != 12 {
		return nil, utils.ErrInvalidInput
	}

	started := time.Now()
	outcome := "fail"
	defer func() { metrics.RecordDraw("manual", outcome, started) }()

	winner, err := s.drawRepo.SelectWinnerByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	outcome = "success"

	s.log.Info("winner manually selected",
		zap.String("user_id", winner.UserID),
		zap.String("number", winner.WinningNumber),
		zap.Int64("epoch", winner.Epoch))
	return winnerResponse(winner), nil
}

func (s *drawService) ClearPool(ctx context.Context) (int64, error) {
	winner, err := s.drawRepo.LatestWinner(ctx)
	if err != nil {
		return 0, err
	}
	if winner == nil {
		return 0, utils.ErrNoWinnerYet
	}

	removed, err := s.entryRepo.DeleteUpToEpoch(ctx, winner.Epoch)
	if err != nil {
		return 0, err
	}

	s.log.Info("non-winning entries cleared",
		zap.Int64("epoch", winner.Epoch),
		zap.Int64("removed", removed))
	return removed, nil
}

func (s *drawService) Stats(ctx context.Context) (*response_models.StatsResponse, error) {
	participants, tickets, err := s.entryRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.StatsResponse{
		ParticipantCount: participants,
		TicketCount:      tickets,
		Revenue:          tickets * s.cfg.TicketPriceMinor,
	}, nil
}

func winnerResponse(w *db_models.Winner) *response_models.WinnerResponse {
	return &response_models.WinnerResponse{
		WinnerID:      w.ID,
		UserID:        w.UserID,
		WinningNumber: w.WinningNumber,
		Epoch:         w.Epoch,
		CreatedAt:     w.CreatedAt,
	}
}
