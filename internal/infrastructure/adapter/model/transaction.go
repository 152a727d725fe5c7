package model

import (
	"time"
)

// Transaction represents the database model for ledger transactions
type Transaction struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index"`
	Type          string    `gorm:"size:32;not null;index"`
	AmountInCents int64     `gorm:"not null"`
	Status        string    `gorm:"size:32;not null;index"`
	AdminNote     string    `gorm:"type:text"`
	AdminID       *uint64   `gorm:"index"`
	PinID         *uint64
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
