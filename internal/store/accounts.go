package store

import (
	"context"
	"errors"

	"impact-log/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAccount inserts a new account. It returns ErrConflict when the email is taken.
func (s *Store) CreateAccount(ctx context.Context, acc *models.Account) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).
			Where("email = ?", acc.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		if err := tx.Create(acc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return nil
	})
}

func (s *Store) AccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var acc models.Account
	if err := s.db.WithContext(ctx).First(&acc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &acc, nil
}

func (s *Store) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var acc models.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&acc).Error; err != nil {
		return nil, notFound(err)
	}
	return &acc, nil
}
