package dto

import (
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// SecurityLogResponse represents an audit row in API responses
type SecurityLogResponse struct {
	ID           uint64    `json:"id"`
	ActorID      uint64    `json:"actorId"`
	TargetUserID uint64    `json:"targetUserId"`
	Action       string    `json:"action"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewSecurityLogResponses maps a slice of security logs
func NewSecurityLogResponses(logs []*entity.SecurityLog) []SecurityLogResponse {
	out := make([]SecurityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, SecurityLogResponse{
			ID:           l.ID,
			ActorID:      l.ActorID,
			TargetUserID: l.TargetUserID,
			Action:       l.Action,
			Detail:       l.Detail,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out
}
