package model

import (
	"time"
)

// SecurityLog represents the database model for the append-only security log
type SecurityLog struct {
	ID           uint64    `gorm:"primaryKey"`
	ActorID      uint64    `gorm:"not null;index"`
	TargetUserID uint64    `gorm:"not null;index"`
	Action       string    `gorm:"size:64;not null"`
	Detail       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for SecurityLog
func (SecurityLog) TableName() string {
	return "security_logs"
}

// AdminLog represents the database model for the admin activity feed
type AdminLog struct {
	ID        uint64    `gorm:"primaryKey"`
	AdminID   uint64    `gorm:"not null;index"`
	Action    string    `gorm:"size:64;not null"`
	Detail    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for AdminLog
func (AdminLog) TableName() string {
	return "admin_logs"
}
