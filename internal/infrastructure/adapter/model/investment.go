package model

import (
	"time"
)

// Investment represents the database model for investment stakes.
// Plan terms are denormalized at join time so plan edits never touch
// running investments.
type Investment struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index"`
	PlanID        uint64    `gorm:"not null;index"`
	AmountInCents int64     `gorm:"not null"`
	ROIPercentage int64     `gorm:"not null"`
	DurationDays  int       `gorm:"not null"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null;index"`
	Status        string    `gorm:"size:32;not null;index"`
	PaidOutCents  int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Investment
func (Investment) TableName() string {
	return "investments"
}
