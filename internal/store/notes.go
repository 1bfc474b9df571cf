package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
)

// preloadTags loads owned tags ordered by id, i.e. the order they were added.
func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.id")
}

// GetNote returns (nil, nil) when no note has the given id.
func (s *Store) GetNote(id uint) (*models.Note, error) {
	var note models.Note

	if err := s.db.Preload("Tags", preloadTags).First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &note, nil
}

func (s *Store) ListNotes() ([]models.Note, error) {
	var notes []models.Note

	if err := s.db.Preload("Tags", preloadTags).Order("id").Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// CreateNote inserts the note. A user id that references no existing user
// rolls back and returns ErrReferential.
func (s *Store) CreateNote(note *models.Note) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(note).Error
	})

	return translateError(err)
}

func (s *Store) UpdateNote(note *models.Note) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Tags").Save(note).Error
	})

	return translateError(err)
}

// DeleteNote removes the note and its tags in one transaction.
func (s *Store) DeleteNote(note *models.Note) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", note.ID).Delete(&models.Tag{}).Error; err != nil {
			return err
		}

		return tx.Delete(note).Error
	})

	return translateError(err)
}
