package models

import "time"

type Note struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	UserID    uint   `gorm:"not null;index"` // Foreign key to the owning User
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	User User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tags []Tag `gorm:"foreignKey:NoteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
