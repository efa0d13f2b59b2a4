package ports

import (
	"context"
	"time"

	"github.com/opsdeck/admin-dashboard/internal/core/policy"
)

// AuditView is an audit event with its actor resolved to a display
// name: "System" when no actor was recorded, "Unknown" when the actor
// has since been deleted.
type AuditView struct {
	ID        string
	Message   string
	Actor     string
	Timestamp time.Time
}

type AuditService interface {
	// Record appends an event. Failures are logged and swallowed so an
	// unavailable audit store never fails the triggering request.
	Record(ctx context.Context, actorID, message string)
	ListRecent(ctx context.Context, actor policy.Actor) ([]AuditView, error)
}
