package model

import (
	"time"
)

// Plan represents the database model for investment plans
type Plan struct {
	ID               uint64    `gorm:"primaryKey"`
	Name             string    `gorm:"size:255;not null"`
	ROIPercentage    int64     `gorm:"not null"`
	DurationDays     int       `gorm:"not null"`
	MinAmountInCents int64     `gorm:"not null"`
	MaxAmountInCents int64     `gorm:"not null"` // 0 means no upper bound
	Active           bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Plan
func (Plan) TableName() string {
	return "plans"
}
