package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records admin changes to impact logs.
type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`

	Entity   string    `gorm:"size:50;not null"` // "impact_log"
	EntityID uuid.UUID `gorm:"type:uuid;not null;index"`
	Action   string    `gorm:"size:50;not null"` // "status_change"
	Details  string    `gorm:"type:text"`
}
