package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrConflict reports a uniqueness violation (e.g. duplicate email).
	ErrConflict = errors.New("store: conflict")

	// ErrReferential reports a foreign key pointing at a missing row.
	ErrReferential = errors.New("store: referenced row does not exist")
)

// translateError maps driver constraint failures onto the store taxonomy.
// Both the postgres and sqlite drivers translate constraint errors when the
// gorm session is opened with TranslateError; the string checks cover driver
// versions that report them untranslated.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferential
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return ErrConflict
	case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return ErrReferential
	}
	return err
}
