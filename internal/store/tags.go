package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
)

// GetTag returns (nil, nil) when no tag has the given id.
func (s *Store) GetTag(id uint) (*models.Tag, error) {
	var tag models.Tag

	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &tag, nil
}

func (s *Store) ListTags() ([]models.Tag, error) {
	var tags []models.Tag

	if err := s.db.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

// CreateTag inserts the tag. A note id that references no existing note rolls
// back and returns ErrReferential.
func (s *Store) CreateTag(tag *models.Tag) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(tag).Error
	})

	return translateError(err)
}

func (s *Store) UpdateTag(tag *models.Tag) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(tag).Error
	})

	return translateError(err)
}

func (s *Store) DeleteTag(tag *models.Tag) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(tag).Error
	})

	return translateError(err)
}
