package persistence

import (
	"context"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// AuditRepository appends to the security and admin logs. There are no update
// or delete methods; the audit trail is append-only by construction.
type AuditRepository interface {
	// CreateSecurityLog appends a security log row
	CreateSecurityLog(ctx context.Context, log *entity.SecurityLog) error

	// CreateAdminLog appends an admin activity row
	CreateAdminLog(ctx context.Context, log *entity.AdminLog) error

	// ListSecurityLogs returns security logs for a target user, newest first
	ListSecurityLogs(ctx context.Context, targetUserID uint64, limit int) ([]*entity.SecurityLog, error)
}
