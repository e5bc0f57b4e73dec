package models

import "time"

// AuditLog is one row of the audit trail. Metadata holds the event's JSON
// payload, empty when the event carried none.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `gorm:"index" json:"user_id"`
	Action string `gorm:"size:64;not null;index" json:"action"`

	Entity   string `gorm:"size:32;index:idx_audit_logs_entity,priority:1" json:"entity"`
	EntityID *uint  `gorm:"index:idx_audit_logs_entity,priority:2" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
