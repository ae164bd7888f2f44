package db_models

import (
	"github.com/google/uuid"
)

// Entry is the batch of tickets minted for one confirmed transaction.
// TransactionID carries a unique index so re-processing the same transaction
// cannot mint a second batch.
type Entry struct {
	BaseModel
	UserID        string `gorm:"index;size:64;not null"`
	TransactionID string `gorm:"uniqueIndex;size:64;not null"`
	AmountMinor   int64

	// Epoch is the drawing generation current when the entry was created.
	// Pool clearing only removes entries whose epoch is <= the epoch the
	// winner was drawn at, so entries issued after a draw survive into the
	// next drawing.
	Epoch int64 `gorm:"index;not null"`

	Tickets []Ticket `gorm:"foreignKey:EntryID"`
}

// Numbers returns the entry's ticket numbers in mint order.
func (e *Entry) Numbers() []string {
	numbers := make([]string, len(e.Tickets))
	for i, t := range e.Tickets {
		numbers[i] = t.Number
	}
	return numbers
}

// Ticket is a single 12-digit lottery number. The unique index on Number is
// the insert-if-absent guard the number generator retries against.
type Ticket struct {
	BaseModel
	EntryID  uuid.UUID `gorm:"index;not null"`
	UserID   string    `gorm:"index;size:64;not null"`
	Number   string    `gorm:"uniqueIndex;size:12;not null"`
	Position int       `gorm:"not null"`
}
