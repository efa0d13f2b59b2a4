package ports

import (
	"context"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
)

// AuditRepository defines append and bounded retrieval for audit events.
// There is deliberately no update or delete: the log is immutable.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
