package models

import (
	"time"

	"gorm.io/datatypes"
)

// Upload records one successful analytics run over an uploaded file.
type Upload struct {
	ID        uint   `gorm:"primaryKey"`
	Filename  string `gorm:"not null"`
	Size      int64  `gorm:"not null"`
	Summary   datatypes.JSON
	CreatedAt time.Time
}
