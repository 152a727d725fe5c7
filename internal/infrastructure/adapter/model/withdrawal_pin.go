package model

import (
	"time"
)

// WithdrawalPin represents the database model for withdrawal PINs
type WithdrawalPin struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     uint64    `gorm:"not null;index:idx_pins_user_status"`
	Pin        string    `gorm:"size:16;not null"`
	Status     string    `gorm:"size:32;not null;index:idx_pins_user_status"`
	ExpiryDate time.Time `gorm:"not null"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for WithdrawalPin
func (WithdrawalPin) TableName() string {
	return "withdrawal_pins"
}

// PinSettings represents the per-user PIN policy row
type PinSettings struct {
	UserID    uint64    `gorm:"primaryKey"`
	Enabled   bool      `gorm:"not null;default:true"`
	MaxPins   int       `gorm:"not null;default:5"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for PinSettings
func (PinSettings) TableName() string {
	return "pin_settings"
}
