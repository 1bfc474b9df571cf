package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
)

// GetUser returns (nil, nil) when no user has the given id.
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail looks a user up by exact email match.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User

	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser inserts the user. A duplicate email rolls back and returns
// ErrConflict.
func (s *Store) CreateUser(user *models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})

	return translateError(err)
}

// UpdateUser persists all columns of the user row.
func (s *Store) UpdateUser(user *models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(user).Error
	})

	return translateError(err)
}

// DeleteUser removes the user together with all owned notes and their tags.
// The cascade is issued explicitly so the boundary holds regardless of which
// database enforces the declared ON DELETE constraints.
func (s *Store) DeleteUser(user *models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id IN (?)",
			tx.Model(&models.Note{}).Select("id").Where("user_id = ?", user.ID),
		).Delete(&models.Tag{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}

		return tx.Delete(user).Error
	})

	return translateError(err)
}
