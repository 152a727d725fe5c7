package model

import (
	"time"
)

// User represents the database model for platform accounts
type User struct {
	ID           uint64    `gorm:"primaryKey"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Name         string    `gorm:"size:255"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:32;not null;default:user"`
	Status       string    `gorm:"size:32;not null;default:active"`
	Balance      int64     `gorm:"not null"` // Balance in cents
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
