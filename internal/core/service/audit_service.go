package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
	"github.com/opsdeck/admin-dashboard/internal/core/ports"
)

// recentLimit caps audit retrieval to the newest entries.
const recentLimit = 50

const (
	systemActor  = "System"
	unknownActor = "Unknown"
)

// AuditRecorder appends immutable audit events and serves the bounded,
// admin-only listing. Recording is best effort: a failed append is
// logged and never propagated to the action that triggered it.
type AuditRecorder struct {
	events ports.AuditRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAuditRecorder(events ports.AuditRepository, users ports.UserRepository, logger zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{events: events, users: users, logger: logger}
}

func (s *AuditRecorder) Record(ctx context.Context, actorID, message string) {
	event := &domain.AuditEvent{
		Message:   message,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.logger.Error().Err(err).Str("message", message).Msg("audit append failed")
	}
}

func (s *AuditRecorder) ListRecent(ctx context.Context, actor policy.Actor) ([]ports.AuditView, error) {
	if err := policy.Decide(actor, policy.ActionViewLogs, ""); err != nil {
		return nil, err
	}

	events, err := s.events.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	views := make([]ports.AuditView, 0, len(events))
	for _, e := range events {
		views = append(views, ports.AuditView{
			ID:        e.ID,
			Message:   e.Message,
			Actor:     s.actorName(ctx, names, e.ActorID),
			Timestamp: e.Timestamp,
		})
	}
	return views, nil
}

func (s *AuditRecorder) actorName(ctx context.Context, cache map[string]string, actorID string) string {
	if actorID == "" {
		return systemActor
	}
	if name, ok := cache[actorID]; ok {
		return name
	}
	name := unknownActor
	if u, err := s.users.FindByID(ctx, actorID); err == nil {
		name = u.Username
	}
	cache[actorID] = name
	return name
}
