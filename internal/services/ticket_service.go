package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"lottopay/internal/config"
	"lottopay/internal/models/db_models"
	"lottopay/internal/models/response_models"
	"lottopay/internal/repositories"
	"lottopay/pkg/metrics"
	"lottopay/pkg/utils"
)

// How many times a whole entry insert is retried when a generated number
// races another issuer onto the same value.
const maxIssueAttempts = 5

type TicketServiceInterface interface {
	// IssueTicket mints the subscriber's plan-determined number of tickets
	// for one confirmed transaction. Re-issuing a known transaction id
	// returns the existing entry unchanged.
	IssueTicket(ctx context.Context, userID, transactionID string, amountMinor int64) (*response_models.EntryResponse, error)
	GetUserTickets(ctx context.Context, userID string) ([]response_models.UserEntryResponse, error)
	ListPoolNumbers(ctx context.Context) ([]response_models.PoolNumberResponse, error)
}

func NewTicketService(
	subRepo repositories.SubscriptionRepository,
	entryRepo repositories.EntryRepository,
	generator NumberGeneratorInterface,
	cfg *config.Config,
	log *zap.Logger,
) TicketServiceInterface {
	return &ticketService{
		subRepo:   subRepo,
		entryRepo: entryRepo,
		generator: generator,
		cfg:       cfg,
		log:       log,
	}
}

type ticketService struct {
	subRepo   repositories.SubscriptionRepository
	entryRepo repositories.EntryRepository
	generator NumberGeneratorInterface
	cfg       *config.Config
	log       *zap.Logger
}

func (s *ticketService) IssueTicket(ctx context.Context, userID, transactionID string, amountMinor int64) (*response_models.EntryResponse, error) {
	if userID == "" || transactionID == "" {
		return nil, utils.ErrInvalidInput
	}

	sub, err := s.subRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, utils.ErrNotSubscribed
	}

	// Fast path for replayed transactions. The unique index on
	// transaction_id closes the race this read leaves open.
	if existing, err := s.entryRepo.FindByTransactionID(ctx, transactionID); err != nil {
		return nil, err
	} else if existing != nil {
		return entryResponse(existing), nil
	}

	count := s.cfg.TicketsFor(string(sub.PlanType))

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		numbers, err := s.generator.Generate(ctx, count)
		if err != nil {
			return nil, err
		}

		entry := &db_models.Entry{
			UserID:        userID,
			TransactionID: transactionID,
			AmountMinor:   amountMinor,
		}
		for _, n := range numbers {
			entry.Tickets = append(entry.Tickets, db_models.Ticket{Number: n})
		}

		err = s.entryRepo.CreateWithTickets(ctx, entry)
		if err == nil {
			metrics.RecordIssue(string(sub.PlanType), count)
			s.log.Info("lottery entry recorded",
				zap.String("user_id", userID),
				zap.String("transaction_id", transactionID),
				zap.Int("tickets", count),
				zap.Int64("epoch", entry.Epoch))
			return entryResponse(entry), nil
		}
		if errors.Is(err, utils.ErrDuplicateEntry) {
			// Another issuer won the race for this transaction.
			existing, ferr := s.entryRepo.FindByTransactionID(ctx, transactionID)
			if ferr != nil {
				return nil, ferr
			}
			if existing != nil {
				return entryResponse(existing), nil
			}
			return nil, utils.ErrDatabaseError
		}
		if errors.Is(err, utils.ErrNumberTaken) {
			s.log.Warn("number collision, regenerating",
				zap.String("transaction_id", transactionID),
				zap.Int("attempt", attempt+1))
			continue
		}
		return nil, err
	}

	return nil, utils.ErrDatabaseError
}

func (s *ticketService) GetUserTickets(ctx context.Context, userID string) ([]response_models.UserEntryResponse, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}

	entries, err := s.entryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]response_models.UserEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, response_models.UserEntryResponse{
			Numbers:   entries[i].Numbers(),
			CreatedAt: entries[i].CreatedAt,
		})
	}
	return result, nil
}

func (s *ticketService) ListPoolNumbers(ctx context.Context) ([]response_models.PoolNumberResponse, error) {
	tickets, err := s.entryRepo.ListTickets(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]response_models.PoolNumberResponse, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, response_models.PoolNumberResponse{
			Number:    t.Number,
			UserID:    t.UserID,
			CreatedAt: t.CreatedAt,
		})
	}
	return result, nil
}

func entryResponse(entry *db_models.Entry) *response_models.EntryResponse {
	return &response_models.EntryResponse{
		EntryID:       entry.ID,
		TransactionID: entry.TransactionID,
		Numbers:       entry.Numbers(),
		CreatedAt:     entry.CreatedAt,
	}
}
