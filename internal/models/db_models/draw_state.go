package db_models

// DrawStateID is the primary key of the single draw_states row.
const DrawStateID = 1

// DrawState is a singleton row holding the current drawing epoch. Winner
// selection locks it FOR UPDATE while it reads the pool and advances the
// epoch; entry creation takes a share lock on it to stamp each entry with a
// consistent epoch. That pair of locks is what keeps "select then clear"
// from deleting entries that were never considered.
type DrawState struct {
	ID           uint  `gorm:"primaryKey"`
	CurrentEpoch int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime"`
}
