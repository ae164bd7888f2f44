package db_models

import (
	"gorm.io/datatypes"
)

type PlanType string

const (
	PlanBasic   PlanType = "basic"
	PlanPremium PlanType = "premium"
)

// Valid reports whether the plan type is one the engine knows about.
func (p PlanType) Valid() bool {
	return p == PlanBasic || p == PlanPremium
}

// Subscription is the one-per-user lottery membership. The unique index on
// UserID is what makes subscribe an atomic check-and-create.
type Subscription struct {
	BaseModel
	UserID   string   `gorm:"uniqueIndex;size:64;not null"`
	PlanType PlanType `gorm:"size:16;index;not null"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
