package models

import "time"

// AuditLog records an administrative or account action.
type AuditLog struct {
	ID        string         `bson:"id" json:"id"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
	Action    string         `bson:"action" json:"action"`
	UserEmail string         `bson:"user_email,omitempty" json:"user_email,omitempty"`
	Details   map[string]any `bson:"details" json:"details"`
	Type      string         `bson:"type" json:"type"` // "info", "warning", "error", "admin"
}
