package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lottopay/internal/models/db_models"
	"lottopay/pkg/utils"
)

type EntryRepository interface {
	// CreateWithTickets persists the entry and its tickets in one
	// transaction, stamping the entry with the current drawing epoch.
	// Returns ErrDuplicateEntry when the transaction id was already
	// processed and ErrNumberTaken when a generated number collided.
	CreateWithTickets(ctx context.Context, entry *db_models.Entry) error
	FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Entry, error)
	ListByUserID(ctx context.Context, userID string) ([]db_models.Entry, error)
	ListTickets(ctx context.Context) ([]db_models.Ticket, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	DeleteUpToEpoch(ctx context.Context, epoch int64) (int64, error)
	Stats(ctx context.Context) (participants int64, tickets int64, err error)
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

type entryRepository struct {
	db *gorm.DB
}

func (r *entryRepository) CreateWithTickets(ctx context.Context, entry *db_models.Entry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Share-lock the draw state so the epoch cannot advance under us:
		// a concurrent winner selection holds this row FOR UPDATE while it
		// reads the pool, so an entry committed after a draw is guaranteed
		// to carry the next epoch.
		var state db_models.DrawState
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			First(&state, db_models.DrawStateID).Error; err != nil {
			return err
		}
		entry.Epoch = state.CurrentEpoch
		for i := range entry.Tickets {
			entry.Tickets[i].UserID = entry.UserID
			entry.Tickets[i].Position = i
		}

		return tx.Create(entry).Error
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The entry and ticket tables both carry unique indexes; find out
		// which one fired so the caller can retry number collisions.
		existing, ferr := r.FindByTransactionID(ctx, entry.TransactionID)
		if ferr == nil && existing != nil {
			return utils.ErrDuplicateEntry
		}
		return utils.ErrNumberTaken
	}
	return utils.ErrDatabaseError
}

func (r *entryRepository) FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Entry, error) {
	var entry db_models.Entry
	err := r.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("transaction_id = ?", transactionID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return &entry, nil
}

func (r *entryRepository) ListByUserID(ctx context.Context, userID string) ([]db_models.Entry, error) {
	var entries []db_models.Entry
	err := r.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

// ListTickets returns every live ticket in entry order, then mint order
// within each entry.
func (r *entryRepository) ListTickets(ctx context.Context) ([]db_models.Ticket, error) {
	var tickets []db_models.Ticket
	err := r.db.WithContext(ctx).
		Joins("JOIN entries ON entries.id = tickets.entry_id").
		Where("entries.deleted_at IS NULL").
		Order("entries.created_at ASC, entries.id ASC, tickets.position ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tickets, nil
}

func (r *entryRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Ticket{}).
		Where("number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return count > 0, nil
}

// DeleteUpToEpoch removes every entry (and its tickets) whose epoch is at or
// below the given drawing epoch. Entries minted after the draw keep their
// higher epoch and survive into the next drawing.
func (r *entryRepository) DeleteUpToEpoch(ctx context.Context, epoch int64) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("entry_id IN (?)", tx.Model(&db_models.Entry{}).
				Select("id").Where("epoch <= ?", epoch)).
			Delete(&db_models.Ticket{}).Error; err != nil {
			return err
		}

		res := tx.Where("epoch <= ?", epoch).Delete(&db_models.Entry{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return removed, nil
}

func (r *entryRepository) Stats(ctx context.Context) (int64, int64, error) {
	var participants int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Entry{}).
		Distinct("user_id").
		Count(&participants).Error
	if err != nil {
		return 0, 0, utils.ErrDatabaseError
	}

	var tickets int64
	err = r.db.WithContext(ctx).
		Model(&db_models.Ticket{}).
		Count(&tickets).Error
	if err != nil {
		return 0, 0, utils.ErrDatabaseError
	}

	return participants, tickets, nil
}
