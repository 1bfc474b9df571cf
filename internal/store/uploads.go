package store

import (
	"gorm.io/gorm"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
)

// CreateUpload records a successful analytics run.
func (s *Store) CreateUpload(upload *models.Upload) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(upload).Error
	})

	return translateError(err)
}
