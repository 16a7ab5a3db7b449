package store

import (
	"impact-log/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// createAuditLog writes an audit record using tx, so it commits or rolls back with the change it describes.
func createAuditLog(tx *gorm.DB, actorID uuid.UUID, entity string, entityID uuid.UUID, action, details string) error {
	return tx.Create(&models.AuditLog{
		AccountID: actorID,
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
	}).Error
}
