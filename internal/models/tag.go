package models

import "time"

type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	NoteID    uint   `gorm:"not null;index"` // Foreign key to the owning Note
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Note Note `gorm:"foreignKey:NoteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
