package services

import (
	"context"

	"fintrack/internal/logger"
)

// auditService records ledger and access events to the structured log.
type auditService struct{}

// NewAuditService creates a new AuditServicer.
func NewAuditService() AuditServicer {
	return &auditService{}
}

// Log records an audit event. It never fails the calling operation.
func (s *auditService) Log(_ context.Context, userID, action, resourceType, resourceID string, changes map[string]any) {
	fields := []any{
		"audit", true,
		"user_id", userID,
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
	}
	for k, v := range changes {
		fields = append(fields, "change."+k, v)
	}
	logger.Get().Infow("audit event", fields...)
}
