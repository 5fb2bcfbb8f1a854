package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is one social profile entry attached to a saved card. A link
// cannot exist without a persisted card; duplicates of the same platform
// are allowed.
type SocialLink struct {
	ID        string `gorm:"primaryKey;size:36"`
	CardID    string `gorm:"index;not null;size:36"`
	Platform  string `gorm:"size:50;not null"`
	Username  string `gorm:"size:255;not null"`
	URL       string `gorm:"size:500;not null"`
	CreatedAt time.Time
}

// TableName keeps the table aligned with the public schema name.
func (SocialLink) TableName() string {
	return "social_links"
}

// BeforeCreate assigns the opaque identifier on insert.
func (l *SocialLink) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
