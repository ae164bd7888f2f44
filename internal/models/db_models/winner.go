package db_models

// Winner records one drawn ticket. Claimed flips exactly once, inside the
// reward settlement transaction.
type Winner struct {
	BaseModel
	UserID        string `gorm:"index;size:64;not null"`
	WinningNumber string `gorm:"size:12;not null"`
	Epoch         int64  `gorm:"not null"`

	Claimed   bool `gorm:"default:false;index"`
	ClaimedAt *int64
}
