package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a mutating admin action. Rows
// are never updated or deleted.
type AuditLog struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entity_id"`
	UserID    string         `json:"user_id"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}
