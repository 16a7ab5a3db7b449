package store

import (
	"context"
	"fmt"

	"impact-log/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) CreateLog(ctx context.Context, l *models.ImpactLog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(l).Error
	})
}

// LogsByOwner returns the account's logs, newest first.
func (s *Store) LogsByOwner(ctx context.Context, accountID uuid.UUID) ([]models.ImpactLog, error) {
	var logs []models.ImpactLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", accountID).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

// AllLogs returns every log with its owner loaded, newest first.
func (s *Store) AllLogs(ctx context.Context) ([]models.ImpactLog, error) {
	var logs []models.ImpactLog
	err := s.db.WithContext(ctx).
		Preload("Account").
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

func (s *Store) PublicLogs(ctx context.Context) ([]models.ImpactLog, error) {
	var logs []models.ImpactLog
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(PublicLogLimit).
		Find(&logs).Error
	return logs, err
}

// UpdateLogStatus sets the status of log id and records the change in the audit log.
// Any status may move to any other.
func (s *Store) UpdateLogStatus(ctx context.Context, id uuid.UUID, status models.Status, actorID uuid.UUID) (*models.ImpactLog, error) {
	var l models.ImpactLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&l, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		old := l.Status
		if err := tx.Model(&l).Update("status", status).Error; err != nil {
			return err
		}
		l.Status = status

		details := fmt.Sprintf("%s -> %s", old, status)
		return createAuditLog(tx, actorID, "impact_log", l.ID, "status_change", details)
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}
