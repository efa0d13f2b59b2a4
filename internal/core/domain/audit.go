package domain

import "time"

// AuditEvent is an append-only record of a significant action. ActorID
// is empty for events not attributable to a user ("System").
type AuditEvent struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
