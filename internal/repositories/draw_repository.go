package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lottopay/internal/models/db_models"
	"lottopay/pkg/utils"
)

type DrawRepository interface {
	// SelectWinner locks the draw state, flattens the live pool in entry
	// order, asks pick for an index over it, persists the winner at the
	// current epoch and advances the epoch — all in one transaction.
	SelectWinner(ctx context.Context, pick func(n int) int) (*db_models.Winner, error)
	// SelectWinnerByNumber does the same for an explicitly chosen number.
	SelectWinnerByNumber(ctx context.Context, number string) (*db_models.Winner, error)
	LatestWinner(ctx context.Context) (*db_models.Winner, error)
	// ClaimByUserID flips the newest unclaimed winner of the user to
	// claimed and returns it, or (nil, nil) when there is nothing to claim.
	ClaimByUserID(ctx context.Context, userID string) (*db_models.Winner, error)
}

func NewDrawRepository(db *gorm.DB) DrawRepository {
	return &drawRepository{db: db}
}

type drawRepository struct {
	db *gorm.DB
}

func (r *drawRepository) SelectWinner(ctx context.Context, pick func(n int) int) (*db_models.Winner, error) {
	var winner *db_models.Winner
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := lockDrawState(tx)
		if err != nil {
			return err
		}

		var tickets []db_models.Ticket
		if err := tx.
			Joins("JOIN entries ON entries.id = tickets.entry_id").
			Where("entries.deleted_at IS NULL").
			Order("entries.created_at ASC, entries.id ASC, tickets.position ASC").
			Find(&tickets).Error; err != nil {
			return err
		}
		if len(tickets) == 0 {
			return utils.ErrNoEligibleEntries
		}

		selected := tickets[pick(len(tickets))]
		winner = &db_models.Winner{
			UserID:        selected.UserID,
			WinningNumber: selected.Number,
			Epoch:         state.CurrentEpoch,
		}
		if err := tx.Create(winner).Error; err != nil {
			return err
		}

		return advanceEpoch(tx, state)
	})
	if err != nil {
		if errors.Is(err, utils.ErrNoEligibleEntries) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return winner, nil
}

func (r *drawRepository) SelectWinnerByNumber(ctx context.Context, number string) (*db_models.Winner, error) {
	var winner *db_models.Winner
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := lockDrawState(tx)
		if err != nil {
			return err
		}

		var ticket db_models.Ticket
		err = tx.
			Joins("JOIN entries ON entries.id = tickets.entry_id").
			Where("entries.deleted_at IS NULL").
			Where("tickets.number = ?", number).
			First(&ticket).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNumberNotFound
			}
			return err
		}

		winner = &db_models.Winner{
			UserID:        ticket.UserID,
			WinningNumber: ticket.Number,
			Epoch:         state.CurrentEpoch,
		}
		if err := tx.Create(winner).Error; err != nil {
			return err
		}

		return advanceEpoch(tx, state)
	})
	if err != nil {
		if errors.Is(err, utils.ErrNumberNotFound) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return winner, nil
}

func (r *drawRepository) LatestWinner(ctx context.Context) (*db_models.Winner, error) {
	var w db_models.Winner
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return &w, nil
}

func (r *drawRepository) ClaimByUserID(ctx context.Context, userID string) (*db_models.Winner, error) {
	var claimed *db_models.Winner
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w db_models.Winner
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND claimed = ?", userID, false).
			Order("created_at DESC, id DESC").
			First(&w).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		now := time.Now().Unix()
		res := tx.Model(&db_models.Winner{}).
			Where("id = ? AND claimed = ?", w.ID, false).
			Updates(map[string]interface{}{"claimed": true, "claimed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race to another claim; treat as not a winner.
			return nil
		}

		w.Claimed = true
		w.ClaimedAt = &now
		claimed = &w
		return nil
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return claimed, nil
}

func lockDrawState(tx *gorm.DB) (*db_models.DrawState, error) {
	var state db_models.DrawState
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&state, db_models.DrawStateID).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func advanceEpoch(tx *gorm.DB, state *db_models.DrawState) error {
	return tx.Model(state).
		Update("current_epoch", state.CurrentEpoch+1).Error
}
