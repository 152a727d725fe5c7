package model

import (
	"time"
)

// MigrationVersion tracks applied schema migrations
type MigrationVersion struct {
	ID        uint64    `gorm:"primaryKey"`
	Version   string    `gorm:"size:64;not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"size:255"`
}

// TableName specifies the table name for MigrationVersion
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
